package progress

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID: "progress-save",
		Method:      http.MethodPost,
		Path:        "/api/v1/progress",
		Summary:     "Сохранить прогресс просмотра",
		Description: "Перезаписывает запись progress_<userId>_<videoId>",
		Tags:        []string{"progress"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "progress-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/progress/{userId}",
		Summary:     "Прогресс пользователя",
		Tags:        []string{"progress"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) reportOp() huma.Operation {
	return huma.Operation{
		OperationID: "progress-admin-report",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/progress",
		Summary:     "Прогресс всех пользователей",
		Description: "Все записи прогресса и сводка по пользователям (пройдено при progress >= 80)",
		Tags:        []string{"progress", "admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
