package logic

import (
	"strings"

	"postview/internal/domain"
)

// MatchesTitle reports whether title contains term, ignoring case. An empty
// term matches everything. The term is not trimmed.
func MatchesTitle(title, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(term))
}

// FilterPosts returns the posts whose title matches term, in source order.
// An empty term returns posts unchanged.
func FilterPosts(posts []domain.Post, term string) []domain.Post {
	if term == "" {
		return posts
	}

	filtered := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if MatchesTitle(post.Title, term) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
