package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
	// Detail repeats the public message for kiosk clients that read `detail`.
	Detail string `json:"detail"`
}

// MessageResponse is the body of informational endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
