package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/config"
	"learninghub/internal/infrastructure/migration"
)

// Storage ключ-значение хранилище в таблице kv_store
type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New открывает пул соединений и применяет миграции
func New(ctx context.Context, cfg *config.Config, engine migration.MigrationEngine, log *slog.Logger) (*Storage, error) {
	mg := migration.NewMigration(cfg, engine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{
		pool: pool,
		log:  log.With(slog.String("component", "kv_postgres")),
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
