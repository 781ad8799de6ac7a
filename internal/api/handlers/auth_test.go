package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolshub/internal/api/handlers"
	"toolshub/internal/config"
	"toolshub/internal/util"
)

func newTestAuthHandler(t *testing.T) *handlers.AuthHandler {
	t.Helper()
	hash, err := util.HashPassword("correct-horse")
	require.NoError(t, err)
	return handlers.NewAuthHandler(config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	}, "test-key")
}

func TestAuthHandler_SignIn(t *testing.T) {
	e := newTestEcho()
	handler := newTestAuthHandler(t)

	t.Run("valid credentials return a token", func(t *testing.T) {
		c, rec := postJSON(e, "/api/auth/signin", map[string]string{
			"username": "admin",
			"password": "correct-horse",
		})

		require.NoError(t, handler.SignIn(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var resp handlers.SignInResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		c, rec := postJSON(e, "/api/auth/signin", map[string]string{
			"username": "admin",
			"password": "wrong",
		})

		require.NoError(t, handler.SignIn(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		c, rec := postJSON(e, "/api/auth/signin", map[string]string{"username": "admin"})

		require.NoError(t, handler.SignIn(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("auth disabled returns 401", func(t *testing.T) {
		disabled := handlers.NewAuthHandler(config.AdminConfig{Username: "admin"}, "test-key")
		c, rec := postJSON(e, "/api/auth/signin", map[string]string{
			"username": "admin",
			"password": "anything",
		})

		require.NoError(t, disabled.SignIn(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
