package user

import "context"

// Repository хранит список пользователей целиком, как единое значение
type Repository interface {
	List(ctx context.Context) ([]User, error)
	SaveAll(ctx context.Context, users []User) error
}
