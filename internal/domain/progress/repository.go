package progress

import "context"

// Repository хранилище записей прогресса
type Repository interface {
	Save(ctx context.Context, rec Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}
