package press_db

import (
	"context"
	"errors"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// FetchUserInteractions retrieves a user's recent interactions, newest
// first, with the article's category and source joined on for
// preference derivation. Interactions whose article has been purged
// still come back, with empty joined attributes.
func (r *PressDBRepository) FetchUserInteractions(ctx context.Context, userID string, limit int, daysBack int) ([]*domain.Interaction, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	cutoff := time.Now().AddDate(0, 0, -daysBack)

	query := `
		SELECT i.id, i.user_id, i.article_id, i.interaction_type,
			COALESCE(i.duration, 0), i.created_at,
			COALESCE(a.category, ''), COALESCE(a.source, '')
		FROM user_interactions i
		LEFT JOIN news_articles a ON i.article_id = a.id
		WHERE i.user_id = $1 AND i.created_at >= $2
		ORDER BY i.created_at DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, userID, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*domain.Interaction, 0, limit)
	for rows.Next() {
		interaction := &domain.Interaction{}
		var kind, category, source string
		if err := rows.Scan(
			&interaction.ID, &interaction.UserID, &interaction.ArticleID,
			&kind, &interaction.DurationSeconds, &interaction.CreatedAt,
			&category, &source,
		); err != nil {
			return nil, err
		}
		interaction.Kind = domain.InteractionKind(kind)
		if category != "" || source != "" {
			interaction.Article = &domain.InteractionArticle{
				Category: domain.Category(category),
				Source:   source,
			}
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}

// FetchUserCategoryCounts aggregates the user's interactions per
// article category.
func (r *PressDBRepository) FetchUserCategoryCounts(ctx context.Context, userID string) (map[domain.Category]int, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT a.category, COUNT(*)
		FROM user_interactions i
		JOIN news_articles a ON i.article_id = a.id
		WHERE i.user_id = $1
		GROUP BY a.category
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Category]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[domain.Category(category)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
