package auth

// LoginRequest captures the staff credentials forwarded to the POS.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the POS session handed back to the kiosk.
type LoginResponse struct {
	Token         string   `json:"token"`
	RoleName      string   `json:"role_name"`
	Role          []string `json:"role"`
	FirebaseToken string   `json:"firebase_token"`
	FirstLogin    any      `json:"first_login"`
}
