package record_interaction_gateway

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/domain"
	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// RecordInteractionGateway implements the RecordInteractionPort
// interface on top of the interaction log.
type RecordInteractionGateway struct {
	pressDB *press_db.PressDBRepository
}

// NewRecordInteractionGateway creates a new gateway instance.
func NewRecordInteractionGateway(pool *pgxpool.Pool) *RecordInteractionGateway {
	return &RecordInteractionGateway{
		pressDB: press_db.NewPressDBRepository(pool),
	}
}

// RecordInteraction appends one interaction to the user's log.
func (g *RecordInteractionGateway) RecordInteraction(ctx context.Context, interaction *domain.Interaction) error {
	if g.pressDB == nil {
		return apperrors.ErrStorageUnavailable
	}

	if err := g.pressDB.RecordInteraction(ctx, interaction); err != nil {
		logger.SafeErrorContext(ctx, "Error recording interaction", "error", err, "user_id", interaction.UserID, "article_id", interaction.ArticleID)
		return apperrors.ErrStorageUnavailable
	}

	return nil
}
