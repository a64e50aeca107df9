package recommendation_log_gateway

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balaji-vnls/VNLS-press/driver/press_db"
	apperrors "github.com/Balaji-vnls/VNLS-press/utils/errors"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"
)

// RecommendationLogGateway implements the RecommendationLogPort
// interface on top of the served-recommendation log.
type RecommendationLogGateway struct {
	pressDB *press_db.PressDBRepository
}

// NewRecommendationLogGateway creates a new gateway instance.
func NewRecommendationLogGateway(pool *pgxpool.Pool) *RecommendationLogGateway {
	return &RecommendationLogGateway{
		pressDB: press_db.NewPressDBRepository(pool),
	}
}

// RecordServed appends one served-recommendation row. Callers treat
// failures as log-and-continue.
func (g *RecommendationLogGateway) RecordServed(ctx context.Context, userID string, articleIDs []string, scores []float64, algorithm string) error {
	if g.pressDB == nil {
		return apperrors.ErrStorageUnavailable
	}

	if err := g.pressDB.RecordRecommendationLog(ctx, userID, articleIDs, scores, algorithm); err != nil {
		logger.SafeErrorContext(ctx, "Error recording served recommendations", "error", err, "user_id", userID, "algorithm", algorithm)
		return apperrors.ErrStorageUnavailable
	}

	return nil
}
