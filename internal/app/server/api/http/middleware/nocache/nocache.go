package nocache

import "github.com/danielgtaylor/huma/v2"

const headerValue = "no-store, no-cache, must-revalidate, max-age=0"

// Middleware запрещает кэширование ответов
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		ctx.SetHeader("Cache-Control", headerValue)
		next(ctx)
	}
}
