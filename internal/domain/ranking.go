package domain

import "sort"

const (
	FeaturedLimit = 6
	RelatedLimit  = 3
)

// FeaturedTools returns the top tools by rating, newest first among equal
// ratings. The sort is stable so equal keys keep their incoming order.
func FeaturedTools(tools []*Tool) []*Tool {
	ranked := make([]*Tool, len(tools))
	copy(ranked, tools)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	if len(ranked) > FeaturedLimit {
		ranked = ranked[:FeaturedLimit]
	}
	return ranked
}

// RelatedTools picks up to three companions for a tool. Same-category tools
// come first, ordered by rating descending; if that tier is short, the rest of
// the catalog backfills in rating order. The tool itself is never included and
// no slug appears twice.
func RelatedTools(current *Tool, all []*Tool) []*Tool {
	byRating := func(ts []*Tool) {
		sort.SliceStable(ts, func(i, j int) bool {
			return ts[i].Rating > ts[j].Rating
		})
	}

	var sameCategory, others []*Tool
	seen := map[string]struct{}{current.Slug: {}}
	for _, t := range all {
		if _, ok := seen[t.Slug]; ok {
			continue
		}
		seen[t.Slug] = struct{}{}
		if t.CategorySlug == current.CategorySlug {
			sameCategory = append(sameCategory, t)
		} else {
			others = append(others, t)
		}
	}

	byRating(sameCategory)
	byRating(others)

	related := append(sameCategory, others...)
	if len(related) > RelatedLimit {
		related = related[:RelatedLimit]
	}
	return related
}
