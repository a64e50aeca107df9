package article_lookup_gateway

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// ArticleLookupGateway implements the ArticleLookupPort interface on
// top of the article store.
type ArticleLookupGateway struct {
	pressDB *press_db.PressDBRepository
}

// NewArticleLookupGateway creates a new gateway instance.
func NewArticleLookupGateway(pool *pgxpool.Pool) *ArticleLookupGateway {
	return &ArticleLookupGateway{
		pressDB: press_db.NewPressDBRepository(pool),
	}
}

// FetchArticleByID resolves one article. Absence maps to
// ErrArticleNotFound; any other failure to ErrStorageUnavailable.
func (g *ArticleLookupGateway) FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if g.pressDB == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	article, err := g.pressDB.FetchArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		logger.SafeErrorContext(ctx, "Error fetching article", "error", err, "article_id", articleID)
		return nil, apperrors.ErrStorageUnavailable
	}

	return article, nil
}
