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

func validCategoryBody(slug string) map[string]any {
	return map[string]any{
		"name":        "Category " + slug,
		"slug":        slug,
		"description": "A category for testing.",
		"iconName":    "Code",
	}
}

func TestCategoryHandler_AddCategory_Validation(t *testing.T) {
	e := newTestEcho()
	handler := handlers.NewCategoryHandler(nil, nil)

	t.Run("unknown icon name returns 400", func(t *testing.T) {
		body := validCategoryBody("some-category")
		body["iconName"] = "Rocket"
		c, rec := postJSON(e, "/api/categories/add", body)

		require.NoError(t, handler.AddCategory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("whitespace-only name returns 400", func(t *testing.T) {
		body := validCategoryBody("some-category")
		body["name"] = "   "
		c, rec := postJSON(e, "/api/categories/add", body)

		require.NoError(t, handler.AddCategory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing description returns 400", func(t *testing.T) {
		body := validCategoryBody("some-category")
		delete(body, "description")
		c, rec := postJSON(e, "/api/categories/add", body)

		require.NoError(t, handler.AddCategory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandler_AddCategory(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	e := newTestEcho()
	handler := handlers.NewCategoryHandler(testDB.DB(), nil)

	t.Run("creates category with placeholder image", func(t *testing.T) {
		slug := uniqueSlug("newcat")
		c, rec := postJSON(e, "/api/categories/add", validCategoryBody(slug))

		require.NoError(t, handler.AddCategory(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var created struct {
			Slug     string `json:"slug"`
			ImageURL string `json:"imageURL"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, slug, created.Slug)
		assert.Contains(t, created.ImageURL, slug)
	})

	t.Run("duplicate slug returns 409", func(t *testing.T) {
		slug := uniqueSlug("dupcat")
		c, rec := postJSON(e, "/api/categories/add", validCategoryBody(slug))
		require.NoError(t, handler.AddCategory(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		c, rec = postJSON(e, "/api/categories/add", validCategoryBody(slug))
		require.NoError(t, handler.AddCategory(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCategoryHandler_GetCategoryTools(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	e := newTestEcho()
	db := testDB.DB()
	handler := handlers.NewCategoryHandler(db, nil)

	t.Run("unknown category returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues("no-such-category")

		require.NoError(t, handler.GetCategoryTools(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("tools come back best rated first", func(t *testing.T) {
		category := seedTestCategory(t, db)
		seedTestTool(t, db, category.Slug, 3.0)
		seedTestTool(t, db, category.Slug, 4.8)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues(category.Slug)

		require.NoError(t, handler.GetCategoryTools(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		var tools []struct {
			Rating float64 `json:"rating"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &tools))
		require.Len(t, tools, 2)
		assert.GreaterOrEqual(t, tools[0].Rating, tools[1].Rating)
	})
}
