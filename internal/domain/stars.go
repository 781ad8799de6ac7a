package domain

import "math"

type StarKind string

const (
	StarFull  StarKind = "full"
	StarHalf  StarKind = "half"
	StarEmpty StarKind = "empty"
)

// RenderStars maps a rating in [0,5] onto exactly five star markers:
// floor(rating) full stars, a half star when the fraction is at least 0.5,
// empty stars for the rest.
func RenderStars(rating float64) [5]StarKind {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	full := int(math.Floor(rating))
	half := rating-math.Floor(rating) >= 0.5

	var stars [5]StarKind
	i := 0
	for ; i < full; i++ {
		stars[i] = StarFull
	}
	if half && i < 5 {
		stars[i] = StarHalf
		i++
	}
	for ; i < 5; i++ {
		stars[i] = StarEmpty
	}
	return stars
}
