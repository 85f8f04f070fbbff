package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Auth проверяет статический bearer токен
type Auth struct {
	token []byte
	log   *slog.Logger
}

func New(token string, log *slog.Logger) *Auth {
	return &Auth{
		token: []byte(token),
		log:   log.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), a.token) != 1 {
			a.log.Warn("unauthorized request",
				slog.String("path", ctx.URL().Path),
				slog.Bool("has_bearer", ok),
			)
			a.unauthorized(ctx)
			return
		}

		next(ctx)
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]any{
		"success": false,
		"error":   "Unauthorized",
	})
	if err != nil {
		a.log.Error("json encode", slog.String("error", err.Error()))
	}
}
