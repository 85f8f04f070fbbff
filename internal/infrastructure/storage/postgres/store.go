package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"learninghub/internal/infrastructure/storage"
)

var _ storage.Store = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	return json.RawMessage(value), true, nil
}

func (s *Storage) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return storage.ErrEmptyKey
	}

	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, key, []byte(value)); err != nil {
		s.log.Error("failed to set value", "key", key, "error", err)
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

// GetByPrefix сравнивает префикс напрямую: символ _ в ключах не должен работать как шаблон LIKE
func (s *Storage) GetByPrefix(ctx context.Context, prefix string) ([]storage.Entry, error) {
	const query = `
		SELECT key, value FROM kv_store
		WHERE left(key, char_length($1)) = $1
		ORDER BY key`

	rows, err := s.pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("get by prefix %s: %w", prefix, err)
	}
	defer rows.Close()

	var out []storage.Entry
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, storage.Entry{Key: key, Value: json.RawMessage(value)})
	}

	return out, rows.Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
