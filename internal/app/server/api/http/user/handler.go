package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.upsertOp(), h.upsert)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	users, err := h.service.List(ctx)
	if err != nil {
		return nil, h.fail("list users", err)
	}

	return &listOutput{Body: user.UsersResponse{Users: users}}, nil
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*upsertOutput, error) {
	u, err := h.service.Upsert(ctx, input.Body)
	if err != nil {
		return nil, h.fail("upsert user", err)
	}

	return &upsertOutput{Body: user.UpsertResponse{Success: true, User: u}}, nil
}

func (h *Handler) fail(op string, err error) error {
	se := apierror.FromDomain(err)
	if apierror.IsServerError(se) {
		h.log.Error(op, slog.String("error", err.Error()))
	} else {
		h.log.Debug(op, slog.String("error", err.Error()))
	}
	return se
}
