package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolshub/internal/domain"
)

func uniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func seedCategory(t *testing.T) *domain.Category {
	t.Helper()
	repo := NewCategoryRepository(testDB.DB())
	slug := uniqueSlug("cat")
	category := &domain.Category{
		Slug:        slug,
		Name:        "Category " + slug,
		Description: "test category",
		IconName:    "Zap",
	}
	require.NoError(t, repo.Create(category))
	return category
}

func seedTool(t *testing.T, categorySlug string, rating float64) *domain.Tool {
	t.Helper()
	repo := NewToolRepository(testDB.DB())
	slug := uniqueSlug("tool")
	tool := &domain.Tool{
		Slug:         slug,
		Name:         "Tool " + slug,
		Image:        "https://picsum.photos/seed/" + slug + "/600/400",
		CategorySlug: categorySlug,
		IsFree:       true,
		Rating:       rating,
		Summary:      "a handy tool",
		Description:  "<p>does things</p>",
		WebsiteLink:  "https://example.com",
		Tags:         []string{"test"},
		UsageSteps: []domain.UsageStep{
			{Text: "open it"},
			{Text: "use it"},
		},
	}
	require.NoError(t, repo.Create(tool))
	return tool
}

func TestToolRepository_CreateAndFindBySlug(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	category := seedCategory(t)
	created := seedTool(t, category.Slug, 4.5)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	repo := NewToolRepository(testDB.DB())
	found, err := repo.FindBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, category.Slug, found.CategorySlug)
	assert.Equal(t, 4.5, found.Rating)
	require.Len(t, found.UsageSteps, 2)
	assert.Equal(t, "open it", found.UsageSteps[0].Text)
	assert.Equal(t, "use it", found.UsageSteps[1].Text)
}

func TestToolRepository_CreateDuplicateSlug(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	category := seedCategory(t)
	tool := seedTool(t, category.Slug, 3)

	repo := NewToolRepository(testDB.DB())
	dup := &domain.Tool{
		Slug:         tool.Slug,
		Name:         "Duplicate",
		CategorySlug: category.Slug,
		Rating:       1,
		Summary:      "dup",
		Description:  "dup",
		WebsiteLink:  "https://example.com",
	}
	err := repo.Create(dup)
	assert.ErrorIs(t, err, ErrToolExists)
}

func TestToolRepository_FindBySlugNotFound(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewToolRepository(testDB.DB())
	_, err := repo.FindBySlug("does-not-exist")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolRepository_FindByCategorySlugSortedByRating(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	category := seedCategory(t)
	seedTool(t, category.Slug, 2)
	seedTool(t, category.Slug, 5)
	seedTool(t, category.Slug, 3.5)

	repo := NewToolRepository(testDB.DB())
	tools, err := repo.FindByCategorySlug(category.Slug)
	require.NoError(t, err)
	require.Len(t, tools, 3)
	assert.Equal(t, 5.0, tools[0].Rating)
	assert.Equal(t, 3.5, tools[1].Rating)
	assert.Equal(t, 2.0, tools[2].Rating)
}

func TestToolRepository_TouchUpdatedAt(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	category := seedCategory(t)
	tool := seedTool(t, category.Slug, 4)

	repo := NewToolRepository(testDB.DB())
	require.NoError(t, repo.TouchUpdatedAt(tool.Slug))

	found, err := repo.FindBySlug(tool.Slug)
	require.NoError(t, err)
	assert.True(t, !found.UpdatedAt.Before(tool.UpdatedAt))
}
