package interaction_history_gateway

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// InteractionHistoryGateway implements the InteractionHistoryPort
// interface on top of the interaction log.
type InteractionHistoryGateway struct {
	pressDB *press_db.PressDBRepository
}

// NewInteractionHistoryGateway creates a new gateway instance.
func NewInteractionHistoryGateway(pool *pgxpool.Pool) *InteractionHistoryGateway {
	return &InteractionHistoryGateway{
		pressDB: press_db.NewPressDBRepository(pool),
	}
}

// FetchUserInteractions returns the user's recent interactions, newest
// first, with article category and source joined on where available.
func (g *InteractionHistoryGateway) FetchUserInteractions(ctx context.Context, userID string, limit int, daysBack int) ([]*domain.Interaction, error) {
	if g.pressDB == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	interactions, err := g.pressDB.FetchUserInteractions(ctx, userID, limit, daysBack)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching user interactions", "error", err, "user_id", userID)
		return nil, apperrors.ErrStorageUnavailable
	}

	return interactions, nil
}

// FetchUserCategoryCounts returns the user's interaction count per
// category.
func (g *InteractionHistoryGateway) FetchUserCategoryCounts(ctx context.Context, userID string) (map[domain.Category]int, error) {
	if g.pressDB == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	counts, err := g.pressDB.FetchUserCategoryCounts(ctx, userID)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching user category counts", "error", err, "user_id", userID)
		return nil, apperrors.ErrStorageUnavailable
	}

	return counts, nil
}
