package press_db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// RecordInteraction appends one interaction row. The interaction log
// is append-only; there is no update or delete path.
func (r *PressDBRepository) RecordInteraction(ctx context.Context, interaction *domain.Interaction) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	metadata, err := json.Marshal(interaction.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_interactions (id, user_id, article_id, interaction_type, duration, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		interaction.ID, interaction.UserID, interaction.ArticleID,
		string(interaction.Kind), interaction.DurationSeconds, metadata,
		interaction.CreatedAt,
	)
	return err
}
