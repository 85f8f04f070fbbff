package attendance

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "attendance-toggle",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/{employeeId}/attendance",
		Summary:     "Отметить присутствие за сегодня",
		Tags:        []string{"attendance"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logsOp() huma.Operation {
	return huma.Operation{
		OperationID: "attendance-logs",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{employeeId}/attendance/logs",
		Summary:     "Журнал присутствия за месяц",
		Tags:        []string{"attendance"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
