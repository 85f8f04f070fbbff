package types

import (
	"context"
	"errors"

	"learninghub/internal/app/client"
)

type ctxKey string

// ClientAppKey ключ *client.App в контексте команды
const ClientAppKey ctxKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

// WithApp кладет приложение в контекст
func WithApp(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, ClientAppKey, app)
}

// AppFrom достает приложение из контекста команды
func AppFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
