package storage

import (
	"context"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/user"
)

type UserRepository struct {
	store Store
	log   *slog.Logger
}

func NewUserRepository(store Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		store: store,
		log:   log,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	users := []user.User{}
	if _, err := getJSON(ctx, r.store, UsersListKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) SaveAll(ctx context.Context, users []user.User) error {
	return setJSON(ctx, r.store, UsersListKey, users)
}
