package attendance

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

type Handler struct {
	service    attendance.Servicer
	clock      clock.Clock
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service attendance.Servicer, clk clock.Clock, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		clock:      clk,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.logsOp(), h.logs)
}

func (h *Handler) toggle(ctx context.Context, input *toggleInput) (*toggleOutput, error) {
	u, err := h.service.Toggle(ctx, input.EmployeeID, input.Body.Attendance)
	if err != nil {
		return nil, h.fail("toggle attendance", err)
	}

	return &toggleOutput{Body: user.AttendanceResponse{Success: true, User: u}}, nil
}

func (h *Handler) logs(ctx context.Context, input *logsInput) (*logsOutput, error) {
	month := attendance.MonthOf(h.clock.Now())
	if input.Month != "" {
		m, err := attendance.ParseYearMonth(input.Month)
		if err != nil {
			return nil, h.fail("attendance logs", err)
		}
		month = m
	}

	logs, err := h.service.LogsForMonth(ctx, input.EmployeeID, month)
	if err != nil {
		return nil, h.fail("attendance logs", err)
	}

	return &logsOutput{Body: attendance.LogsResponse{Logs: logs}}, nil
}

func (h *Handler) fail(op string, err error) error {
	se := apierror.FromDomain(err)
	if apierror.IsServerError(se) {
		h.log.Error(op, slog.String("error", err.Error()))
	}
	return se
}
