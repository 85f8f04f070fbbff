// Package syncer обмен прогрессом и посещаемостью с сервером: оптимистичные изменения с откатом.
package syncer

import (
	"context"

	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/cache"
	"learninghub/internal/app/client/session"
	"learninghub/internal/app/client/store"
	"learninghub/internal/app/client/transport"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

// Remote операции сервера, нужные синхронизации
type Remote interface {
	SaveProgress(ctx context.Context, req progress.SaveRequest) transport.Result[progress.SaveResponse]
	UserProgress(ctx context.Context, userID string) transport.Result[[]progress.Record]
	SetAttendance(ctx context.Context, employeeID string, present bool) transport.Result[user.User]
	AttendanceLogs(ctx context.Context, employeeID, month string) transport.Result[[]attendance.Log]
}

// SyncContext все, что нужно синхронизации, собирается один раз при старте сессии
type SyncContext struct {
	Identity session.Identity
	Cache    *cache.ProgressCache
	Mirror   *session.Mirror
	Store    store.Store
	Remote   Remote
	Clock    clock.Clock
	Log      *slog.Logger
}
