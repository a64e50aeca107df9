package press_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Balaji-vnls/VNLS-press/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestPressDBRepository_FetchUserInteractions_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PressDBRepository{pool: mock}
	ctx := context.Background()

	createdAt := time.Now().Add(-time.Hour)

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "article_id", "interaction_type", "duration",
		"created_at", "category", "source",
	}).
		AddRow("i1", "user-1", "a1", "read", 42.5, createdAt, "technology", "Wired").
		AddRow("i2", "user-1", "a2", "click", 0.0, createdAt.Add(-time.Hour), "", "")

	mock.ExpectQuery("SELECT i.id, i.user_id, i.article_id").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(rows)

	interactions, err := repo.FetchUserInteractions(ctx, "user-1", 100, 30)
	require.NoError(t, err)
	require.Len(t, interactions, 2)

	require.Equal(t, domain.InteractionRead, interactions[0].Kind)
	require.NotNil(t, interactions[0].Article)
	require.Equal(t, domain.CategoryTechnology, interactions[0].Article.Category)
	require.Equal(t, "Wired", interactions[0].Article.Source)

	// Purged article: joined attributes missing, interaction kept.
	require.Nil(t, interactions[1].Article)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPressDBRepository_FetchUserInteractions_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PressDBRepository{pool: mock}

	mock.ExpectQuery("SELECT i.id, i.user_id, i.article_id").
		WillReturnError(errors.New("timeout"))

	_, err = repo.FetchUserInteractions(context.Background(), "user-1", 100, 30)
	require.Error(t, err)
}

func TestPressDBRepository_FetchUserCategoryCounts_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PressDBRepository{pool: mock}
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"category", "count"}).
		AddRow("technology", 7).
		AddRow("business", 3)

	mock.ExpectQuery("SELECT a.category, COUNT").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(rows)

	counts, err := repo.FetchUserCategoryCounts(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, map[domain.Category]int{
		domain.CategoryTechnology: 7,
		domain.CategoryBusiness:   3,
	}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPressDBRepository_FetchUserCategoryCounts_NilPool(t *testing.T) {
	repo := &PressDBRepository{}

	_, err := repo.FetchUserCategoryCounts(context.Background(), "user-1")
	require.Error(t, err)
}
