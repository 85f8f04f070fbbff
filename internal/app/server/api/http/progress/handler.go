package progress

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/progress"
)

type Handler struct {
	service    progress.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service progress.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.reportOp(), h.report)
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*saveOutput, error) {
	if _, err := h.service.Save(ctx, input.Body); err != nil {
		return nil, h.fail("save progress", err)
	}

	return &saveOutput{Body: progress.SaveResponse{Success: true}}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	records, err := h.service.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("list progress", err)
	}

	return &listOutput{Body: progress.RecordsResponse{Progress: records}}, nil
}

func (h *Handler) report(ctx context.Context, _ *reportInput) (*reportOutput, error) {
	report, err := h.service.Report(ctx)
	if err != nil {
		return nil, h.fail("progress report", err)
	}

	return &reportOutput{Body: report}, nil
}

func (h *Handler) fail(op string, err error) error {
	se := apierror.FromDomain(err)
	if apierror.IsServerError(se) {
		h.log.Error(op, slog.String("error", err.Error()))
	}
	return se
}
