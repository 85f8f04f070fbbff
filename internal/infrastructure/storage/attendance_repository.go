package storage

import (
	"context"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/attendance"
)

type AttendanceRepository struct {
	store Store
	log   *slog.Logger
}

func NewAttendanceRepository(store Store, log *slog.Logger) *AttendanceRepository {
	return &AttendanceRepository{
		store: store,
		log:   log,
	}
}

func (r *AttendanceRepository) Logs(ctx context.Context, employeeID string) ([]attendance.Log, error) {
	logs := []attendance.Log{}
	if _, err := getJSON(ctx, r.store, AttendanceKey(employeeID), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *AttendanceRepository) SaveLogs(ctx context.Context, employeeID string, logs []attendance.Log) error {
	if logs == nil {
		logs = []attendance.Log{}
	}
	return setJSON(ctx, r.store, AttendanceKey(employeeID), logs)
}
