package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Состояние сервера",
		Description: "Публичная проверка доступности: статус, активное KV хранилище и время сервера (UTC). Клиент вызывает ее перед синхронизацией.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
