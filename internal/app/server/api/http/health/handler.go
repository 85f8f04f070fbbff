package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"learninghub/internal/utils/clock"
)

type Handler struct {
	storage    string
	clock      clock.Clock
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage string, clk clock.Clock, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		clock:      clk,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: StatusResponse{
			Status:  "OK",
			Storage: h.storage,
			Time:    h.clock.Now().UTC(),
		},
	}, nil
}
