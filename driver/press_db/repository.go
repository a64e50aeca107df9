package press_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// PressDBRepository reads articles and interactions and appends
// interaction and served-log rows. Ranking never mutates articles or
// existing interactions through it.
type PressDBRepository struct {
	pool DBPool
}

func NewPressDBRepository(pool DBPool) *PressDBRepository {
	return &PressDBRepository{pool: pool}
}
