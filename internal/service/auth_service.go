package service

import (
	"portfolio-api/internal/auth"
)

// AdminUser is the identity returned to a successfully authenticated client.
type AdminUser struct {
	Username string
	Role     string
}

// AuthService exchanges admin credentials for bearer tokens.
type AuthService interface {
	Login(username, password string) (string, *AdminUser, error)
}

type authService struct {
	credentials auth.AdminCredentials
	tokens      *auth.TokenService
}

func NewAuthService(credentials auth.AdminCredentials, tokens *auth.TokenService) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
	}
}

func (s *authService) Login(username, password string) (string, *AdminUser, error) {
	if !s.credentials.Match(username, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, auth.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	return token, &AdminUser{Username: username, Role: auth.RoleAdmin}, nil
}
