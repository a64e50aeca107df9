// Package ranking implements the personalized ranking engine: title
// deduplication, preference profile derivation, feature boosters and
// the scoring passes that combine them. Everything here is pure; I/O
// with the storage and model collaborators lives in the usecase layer.
package ranking

import (
	"github.com/Balaji-vnls/VNLS-press/domain"
)

// Deduplicate collapses candidates that share a normalized title,
// preserving the order of first occurrence. Downstream diversity and
// scoring assume at most one article per title, so this runs before
// any scoring.
func Deduplicate(articles []*domain.Article) []*domain.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]*domain.Article, 0, len(articles))

	for _, article := range articles {
		key := article.NormalizedTitle()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, article)
	}

	return unique
}
