package press_db

import (
	"context"
	"fmt"

	"github.com/Balaji-vnls/VNLS-press/config"
	"github.com/Balaji-vnls/VNLS-press/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBPool opens a pgx connection pool against the configured
// database and verifies connectivity.
func InitDBPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable pool_max_conns=%d pool_min_conns=%d connect_timeout=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
		cfg.MaxConns, cfg.MinConns, int(cfg.ConnectTimeout.Seconds()),
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "host", cfg.Host, "database", cfg.Name)

	return pool, nil
}
