package catalog

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/catalog"
)

type Handler struct {
	service    catalog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service catalog.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.categoriesOp(), h.categories)
	huma.Register(api, h.videosOp(), h.videos)
}

func (h *Handler) categories(ctx context.Context, _ *categoriesInput) (*categoriesOutput, error) {
	categories, err := h.service.Categories(ctx)
	if err != nil {
		h.log.Error("load categories", slog.String("error", err.Error()))
		return nil, apierror.FromDomain(err)
	}

	return &categoriesOutput{Body: catalog.CategoriesResponse{Categories: categories}}, nil
}

func (h *Handler) videos(ctx context.Context, input *videosInput) (*videosOutput, error) {
	videos, err := h.service.Videos(ctx, input.CategoryID)
	if err != nil {
		se := apierror.FromDomain(err)
		if apierror.IsServerError(se) {
			h.log.Error("load videos", slog.String("category_id", input.CategoryID), slog.String("error", err.Error()))
		}
		return nil, se
	}

	return &videosOutput{Body: catalog.VideosResponse{Videos: videos}}, nil
}
