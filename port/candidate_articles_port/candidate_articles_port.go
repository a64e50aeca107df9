package candidate_articles_port

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// CandidateArticlesPort defines the interface for fetching candidate
// articles from the ingestion/storage collaborator. The returned slice
// is a read-only snapshot borrowed for one ranking call.
type CandidateArticlesPort interface {
	// FetchCandidateArticles retrieves recent articles, optionally
	// restricted to one category. A nil category means all categories.
	FetchCandidateArticles(ctx context.Context, category *domain.Category, limit int) ([]*domain.Article, error)
}
