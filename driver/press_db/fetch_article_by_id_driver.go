package press_db

import (
	"context"
	"errors"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

// FetchArticleByID retrieves one article by its identity. A missing
// article surfaces as pgx.ErrNoRows so callers can distinguish absence
// from failure.
func (r *PressDBRepository) FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, title, content, summary, url, source, category,
			published_at, COALESCE(image_url, ''), COALESCE(author, '')
		FROM news_articles
		WHERE id = $1
	`

	article := &domain.Article{}
	var categoryName string
	err := r.pool.QueryRow(ctx, query, articleID).Scan(
		&article.ID, &article.Title, &article.Content, &article.Summary,
		&article.URL, &article.Source, &categoryName,
		&article.PublishedAt, &article.ImageURL, &article.Author,
	)
	if err != nil {
		return nil, err
	}
	article.Category = domain.Category(categoryName)

	return article, nil
}
