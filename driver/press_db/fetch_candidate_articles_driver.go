package press_db

import (
	"context"
	"errors"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"

	"github.com/jackc/pgx/v5"
)

// FetchCandidateArticles retrieves articles published since the given
// time, newest first, optionally restricted to one category.
func (r *PressDBRepository) FetchCandidateArticles(ctx context.Context, category *domain.Category, since time.Time, limit int) ([]*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var rows pgx.Rows
	var err error

	if category != nil {
		query := `
			SELECT id, title, content, summary, url, source, category,
				published_at, COALESCE(image_url, ''), COALESCE(author, '')
			FROM news_articles
			WHERE published_at >= $1 AND category = $2
			ORDER BY published_at DESC, id DESC
			LIMIT $3
		`
		rows, err = r.pool.Query(ctx, query, since, string(*category), limit)
	} else {
		query := `
			SELECT id, title, content, summary, url, source, category,
				published_at, COALESCE(image_url, ''), COALESCE(author, '')
			FROM news_articles
			WHERE published_at >= $1
			ORDER BY published_at DESC, id DESC
			LIMIT $2
		`
		rows, err = r.pool.Query(ctx, query, since, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0, limit)
	for rows.Next() {
		article := &domain.Article{}
		var categoryName string
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Content, &article.Summary,
			&article.URL, &article.Source, &categoryName,
			&article.PublishedAt, &article.ImageURL, &article.Author,
		); err != nil {
			return nil, err
		}
		article.Category = domain.Category(categoryName)
		if article.ID == "" {
			// Rows ingested before identity assignment get the
			// canonical content-derived ID on the way in.
			article.ID = domain.NewArticleID(article.Title, article.Source, article.PublishedAt)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
