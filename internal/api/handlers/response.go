package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the single response shape every endpoint returns: a success
// flag, the payload or null, and an error message or null.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: &message})
}

func ErrUnauthorized(c echo.Context, message string) error {
	if message == "" {
		message = "unauthorized"
	}
	return Fail(c, http.StatusUnauthorized, message)
}

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return Fail(c, http.StatusNotFound, message)
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return Fail(c, http.StatusBadRequest, message)
}

func ErrConflict(c echo.Context, message string) error {
	if message == "" {
		message = "conflict"
	}
	return Fail(c, http.StatusConflict, message)
}

// ErrInternalServerError keeps the client message generic; the detailed cause
// is logged server-side only.
func ErrInternalServerError(c echo.Context) error {
	return Fail(c, http.StatusInternalServerError, "internal server error")
}
