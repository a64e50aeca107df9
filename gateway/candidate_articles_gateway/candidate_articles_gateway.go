package candidate_articles_gateway

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// CandidateArticlesGateway implements the CandidateArticlesPort
// interface on top of the article store.
type CandidateArticlesGateway struct {
	pressDB     *press_db.PressDBRepository
	windowHours int
}

// NewCandidateArticlesGateway creates a new gateway instance. The
// window bounds how far back candidates are pulled from.
func NewCandidateArticlesGateway(pool *pgxpool.Pool, windowHours int) *CandidateArticlesGateway {
	return &CandidateArticlesGateway{
		pressDB:     press_db.NewPressDBRepository(pool),
		windowHours: windowHours,
	}
}

// FetchCandidateArticles retrieves recent articles, optionally
// restricted to one category. A nil category means all categories.
func (g *CandidateArticlesGateway) FetchCandidateArticles(ctx context.Context, category *domain.Category, limit int) ([]*domain.Article, error) {
	if g.pressDB == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	since := time.Now().UTC().Add(-time.Duration(g.windowHours) * time.Hour)

	articles, err := g.pressDB.FetchCandidateArticles(ctx, category, since, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching candidate articles", "error", err, "since", since, "limit", limit)
		return nil, apperrors.ErrStorageUnavailable
	}

	return articles, nil
}
