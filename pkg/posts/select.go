package posts

import "sort"

// Select returns the published posts, most recent first, truncated to limit.
// Posts with equal dates keep their relative order. A limit of zero or less
// means DefaultLimit. The input slice is not modified.
func Select(all []Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultLimit
	}

	selected := make([]Post, 0, len(all))
	for _, post := range all {
		if post.Published {
			selected = append(selected, post)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date.After(selected[j].Date)
	})

	if len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
