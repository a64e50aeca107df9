package press_db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/Balaji-vnls/VNLS-press/domain"
)

func TestPressDBRepository_FetchArticleByID_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PressDBRepository{pool: mock}

	publishedAt := time.Now().Add(-3 * time.Hour)

	expectedQuery := `
		SELECT id, title, content, summary, url, source, category,
			published_at, COALESCE(image_url, ''), COALESCE(author, '')
		FROM news_articles
		WHERE id = $1
	`

	mock.ExpectQuery(regexp.QuoteMeta(expectedQuery)).
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "content", "summary", "url", "source", "category",
			"published_at", "image_url", "author",
		}).AddRow(
			"a1", "Chips rally", "content", "summary", "https://example.com/a1",
			"Reuters", "technology", publishedAt, "", "",
		))

	article, err := repo.FetchArticleByID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, "a1", article.ID)
	require.Equal(t, domain.CategoryTechnology, article.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPressDBRepository_FetchArticleByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PressDBRepository{pool: mock}

	mock.ExpectQuery("SELECT id, title").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FetchArticleByID(context.Background(), "missing")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestPressDBRepository_FetchArticleByID_NilPool(t *testing.T) {
	repo := &PressDBRepository{}

	_, err := repo.FetchArticleByID(context.Background(), "a1")
	require.Error(t, err)
}
