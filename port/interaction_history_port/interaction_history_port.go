package interaction_history_port

import (
	"context"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// InteractionHistoryPort defines the interface for reading a user's
// interaction history from the storage collaborator. Interactions are
// returned most-recent-first; the log is append-only and never mutated
// by the ranking engine.
type InteractionHistoryPort interface {
	// FetchUserInteractions returns at most limit interactions no older
	// than daysBack days, newest first, with article category and
	// source joined on where the article still exists.
	FetchUserInteractions(ctx context.Context, userID string, limit int, daysBack int) ([]*domain.Interaction, error)

	// FetchUserCategoryCounts returns the user's lifetime interaction
	// count per category.
	FetchUserCategoryCounts(ctx context.Context, userID string) (map[domain.Category]int, error)
}
