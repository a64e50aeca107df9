package press_db

import (
	"context"
	"errors"
	"time"
)

// RecordRecommendationLog stores which article IDs and scores were
// served to a user by which ranking algorithm.
func (r *PressDBRepository) RecordRecommendationLog(ctx context.Context, userID string, articleIDs []string, scores []float64, algorithm string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `
		INSERT INTO recommendation_logs (user_id, article_ids, scores, algorithm, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, userID, articleIDs, scores, algorithm, time.Now().UTC())
	return err
}
