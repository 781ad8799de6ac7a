package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolshub/internal/api/handlers"
)

func TestCommentHandler_AddToolComment_Validation(t *testing.T) {
	e := newTestEcho()
	handler := handlers.NewCommentHandler(nil)

	t.Run("missing name returns 400", func(t *testing.T) {
		c, rec := postJSON(e, "/api/tools/x/comments", map[string]any{"comment": "hi"})
		c.SetParamNames("slug")
		c.SetParamValues("x")

		require.NoError(t, handler.AddToolComment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("whitespace-only comment body returns 400", func(t *testing.T) {
		c, rec := postJSON(e, "/api/tools/x/comments", map[string]any{
			"name":    "Mara",
			"comment": "\t ",
		})
		c.SetParamNames("slug")
		c.SetParamValues("x")

		require.NoError(t, handler.AddToolComment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing comment body returns 400", func(t *testing.T) {
		c, rec := postJSON(e, "/api/tools/x/comments", map[string]any{"name": "Mara"})
		c.SetParamNames("slug")
		c.SetParamValues("x")

		require.NoError(t, handler.AddToolComment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCommentHandler_AddToolComment(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	e := newTestEcho()
	db := testDB.DB()
	handler := handlers.NewCommentHandler(db)

	t.Run("unknown tool returns 404", func(t *testing.T) {
		c, rec := postJSON(e, "/api/tools/missing/comments", map[string]any{
			"name":    "Mara",
			"comment": "hello",
		})
		c.SetParamNames("slug")
		c.SetParamValues("definitely-missing")

		require.NoError(t, handler.AddToolComment(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("creates comment and returns 201", func(t *testing.T) {
		category := seedTestCategory(t, db)
		tool := seedTestTool(t, db, category.Slug, 4.0)

		c, rec := postJSON(e, "/api/tools/"+tool.Slug+"/comments", map[string]any{
			"name":    "Deniz",
			"comment": "Saved me an afternoon.",
		})
		c.SetParamNames("slug")
		c.SetParamValues(tool.Slug)

		require.NoError(t, handler.AddToolComment(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var created struct {
			ToolSlug string `json:"toolSlug"`
			Name     string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, tool.Slug, created.ToolSlug)
		assert.Equal(t, "Deniz", created.Name)
	})
}

func TestCommentHandler_GetToolComments(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	e := newTestEcho()
	db := testDB.DB()
	handler := handlers.NewCommentHandler(db)

	t.Run("unknown tool returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues("definitely-missing")

		require.NoError(t, handler.GetToolComments(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty list for tool without comments", func(t *testing.T) {
		category := seedTestCategory(t, db)
		tool := seedTestTool(t, db, category.Slug, 4.0)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues(tool.Slug)

		require.NoError(t, handler.GetToolComments(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		var comments []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &comments))
		assert.Empty(t, comments)
	})
}
