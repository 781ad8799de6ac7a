package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countStars(stars [5]StarKind) (full, half, empty int) {
	for _, s := range stars {
		switch s {
		case StarFull:
			full++
		case StarHalf:
			half++
		case StarEmpty:
			empty++
		}
	}
	return
}

func TestRenderStars(t *testing.T) {
	cases := []struct {
		rating            float64
		full, half, empty int
	}{
		{0, 0, 0, 5},
		{5, 5, 0, 0},
		{3.5, 3, 1, 1},
		{4.7, 4, 1, 0},
		{4.4, 4, 0, 1},
		{0.5, 0, 1, 4},
		{2, 2, 0, 3},
	}

	for _, tc := range cases {
		full, half, empty := countStars(RenderStars(tc.rating))
		assert.Equal(t, tc.full, full, "rating %v full", tc.rating)
		assert.Equal(t, tc.half, half, "rating %v half", tc.rating)
		assert.Equal(t, tc.empty, empty, "rating %v empty", tc.rating)
		assert.Equal(t, 5, full+half+empty, "rating %v total", tc.rating)
	}
}

func TestRenderStars_ClampsOutOfRange(t *testing.T) {
	full, _, _ := countStars(RenderStars(7))
	assert.Equal(t, 5, full)

	_, _, empty := countStars(RenderStars(-1))
	assert.Equal(t, 5, empty)
}
