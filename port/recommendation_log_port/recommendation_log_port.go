package recommendation_log_port

import (
	"context"
)

// RecommendationLogPort records which articles were served to a user.
// Callers invoke it fire-and-forget: a failure to log must never fail
// the ranking response.
type RecommendationLogPort interface {
	RecordServed(ctx context.Context, userID string, articleIDs []string, scores []float64, algorithm string) error
}
