package catalog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) categoriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "catalog-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "Разделы обучения",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) videosOp() huma.Operation {
	return huma.Operation{
		OperationID: "catalog-videos",
		Method:      http.MethodGet,
		Path:        "/api/v1/videos/{categoryId}",
		Summary:     "Видео раздела",
		Tags:        []string{"catalog"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
