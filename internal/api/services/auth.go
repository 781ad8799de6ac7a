package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"toolshub/internal/config"
	"toolshub/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("admin auth is not configured")
)

type SignInInput struct {
	Username string
	Password string
}

// AuthService issues admin session tokens. There is a single configured
// admin account; when no password hash is configured the whole admin gate is
// off and sign-in is rejected outright.
type AuthService struct {
	admin  config.AdminConfig
	jwtKey string
}

func NewAuthService(admin config.AdminConfig, jwtKey string) *AuthService {
	return &AuthService{
		admin:  admin,
		jwtKey: jwtKey,
	}
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (string, error) {
	if s.admin.PasswordHash == "" {
		return "", ErrAuthDisabled
	}

	if input.Username != s.admin.Username {
		return "", ErrInvalidCredentials
	}

	if err := util.CheckPassword(s.admin.PasswordHash, input.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateJWTToken(input.Username)
}

func (s *AuthService) generateJWTToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}
