package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"toolshub/internal/api/services"
	"toolshub/internal/config"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(admin config.AdminConfig, jwtKey string) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(admin, jwtKey),
	}
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

// SignIn godoc
// @Summary Exchange admin credentials for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body SignInRequest true "Credentials"
// @Success 200 {object} handlers.Envelope{data=SignInResponse}
// @Failure 401 {object} handlers.Envelope
// @Router /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	token, err := h.authService.SignIn(c.Request().Context(), services.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return ErrUnauthorized(c, "invalid credentials")
		case errors.Is(err, services.ErrAuthDisabled):
			return ErrUnauthorized(c, "admin auth is not configured")
		default:
			c.Logger().Errorf("sign in: %v", err)
			return ErrInternalServerError(c)
		}
	}

	return OK(c, http.StatusOK, SignInResponse{Token: token})
}
