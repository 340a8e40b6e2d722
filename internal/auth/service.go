package auth

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*pos.LoginResult, error)
}

type service struct {
	pos    authenticator
	logger *logger.Logger
}

// NewService constructs a login service that proxies credentials to the POS.
func NewService(gateway authenticator, logg *logger.Logger) (Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("pos gateway is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{pos: gateway, logger: logg}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	result, err := s.pos.Authenticate(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "pos login returned no token")
	}

	s.logger.Info(s.logger.WithField(ctx, "role_name", result.RoleName), "auth.login.success")

	role := result.Role
	if role == nil {
		role = []string{}
	}
	return &LoginResponse{
		Token:         result.Token,
		RoleName:      result.RoleName,
		Role:          role,
		FirebaseToken: result.FirebaseToken,
		FirstLogin:    result.FirstLogin,
	}, nil
}
