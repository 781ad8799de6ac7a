package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTool(slug, category string, rating float64, createdAt time.Time) *Tool {
	t := &Tool{
		Slug:         slug,
		Name:         slug,
		CategorySlug: category,
		Rating:       rating,
	}
	t.CreatedAt = createdAt
	return t
}

func TestFeaturedTools_OrderAndLimit(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var tools []*Tool
	for i := 0; i < 10; i++ {
		tools = append(tools, makeTool(fmt.Sprintf("tool-%d", i), "misc", float64(i%6), base.Add(time.Duration(i)*time.Hour)))
	}

	featured := FeaturedTools(tools)
	require.Len(t, featured, FeaturedLimit)

	for i := 1; i < len(featured); i++ {
		prev, cur := featured[i-1], featured[i]
		if prev.Rating == cur.Rating {
			assert.True(t, !prev.CreatedAt.Before(cur.CreatedAt), "newest first on equal rating")
		} else {
			assert.Greater(t, prev.Rating, cur.Rating)
		}
	}
}

func TestFeaturedTools_NoDuplicatesAndInputUntouched(t *testing.T) {
	base := time.Now()
	tools := []*Tool{
		makeTool("a", "x", 1, base),
		makeTool("b", "x", 5, base),
		makeTool("c", "x", 3, base),
	}

	featured := FeaturedTools(tools)
	require.Len(t, featured, 3)
	assert.Equal(t, "b", featured[0].Slug)

	seen := map[string]bool{}
	for _, f := range featured {
		assert.False(t, seen[f.Slug])
		seen[f.Slug] = true
	}

	// caller's slice order is preserved
	assert.Equal(t, "a", tools[0].Slug)
}

func TestRelatedTools_SameCategoryFirst(t *testing.T) {
	now := time.Now()
	current := makeTool("current", "pdf", 4, now)
	all := []*Tool{
		current,
		makeTool("pdf-low", "pdf", 1, now),
		makeTool("pdf-high", "pdf", 5, now),
		makeTool("video-top", "video", 5, now),
		makeTool("code-top", "code", 4.5, now),
	}

	related := RelatedTools(current, all)
	require.Len(t, related, RelatedLimit)

	// both same-category tools lead, best rated first, then cross-category backfill
	assert.Equal(t, "pdf-high", related[0].Slug)
	assert.Equal(t, "pdf-low", related[1].Slug)
	assert.Equal(t, "video-top", related[2].Slug)
}

func TestRelatedTools_ExcludesSelfAndDuplicates(t *testing.T) {
	now := time.Now()
	current := makeTool("current", "pdf", 4, now)
	all := []*Tool{
		current,
		current,
		makeTool("other", "pdf", 2, now),
		makeTool("other", "pdf", 2, now),
	}

	related := RelatedTools(current, all)
	require.Len(t, related, 1)
	assert.Equal(t, "other", related[0].Slug)
}

func TestRelatedTools_FewerCandidatesThanLimit(t *testing.T) {
	now := time.Now()
	current := makeTool("current", "pdf", 4, now)

	related := RelatedTools(current, []*Tool{current})
	assert.Empty(t, related)

	related = RelatedTools(current, []*Tool{current, makeTool("only", "video", 3, now)})
	require.Len(t, related, 1)
	assert.Equal(t, "only", related[0].Slug)
}

func TestValidIconName(t *testing.T) {
	assert.True(t, ValidIconName("Zap"))
	assert.True(t, ValidIconName("FileText"))
	assert.False(t, ValidIconName("zap"))
	assert.False(t, ValidIconName("Rocket"))
	assert.False(t, ValidIconName(""))
}
