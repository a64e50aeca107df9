package article_lookup_port

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// ArticleLookupPort resolves one article by its identity, used to
// anchor similar-article rankings.
type ArticleLookupPort interface {
	// FetchArticleByID returns the article or ErrArticleNotFound.
	FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
}
