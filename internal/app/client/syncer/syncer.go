package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/session"
	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
)

// PushStatus итог отправки прогресса. Ошибкой для вызывающего не является ни один вариант.
type PushStatus int

const (
	PushSent PushStatus = iota + 1
	PushLocalOnly
	PushSkipped
	PushFailed
)

func (s PushStatus) String() string {
	switch s {
	case PushSent:
		return "sent"
	case PushLocalOnly:
		return "local-only"
	case PushSkipped:
		return "skipped"
	case PushFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Syncer struct {
	sc    SyncContext
	guard *MutationGuard
	log   *slog.Logger
}

func New(sc SyncContext) *Syncer {
	return &Syncer{
		sc:    sc,
		guard: NewMutationGuard(),
		log:   sc.Log.With(slog.String("component", "syncer"), slog.String("user_id", sc.Identity.UserID)),
	}
}

func (s *Syncer) Context() SyncContext {
	return s.sc
}

func (s *Syncer) Guard() *MutationGuard {
	return s.guard
}

// PushProgress сначала пишет локальный кеш, затем отправляет процент на сервер.
// Без categoryID прогресс только сохраняется локально. Пока предыдущая отправка
// по тому же видео не завершена, новая пропускается.
func (s *Syncer) PushProgress(ctx context.Context, contentID string, watchedSeconds, totalDuration float64, categoryID string) PushStatus {
	if _, err := s.sc.Cache.Upsert(contentID, watchedSeconds, totalDuration); err != nil {
		if errors.Is(err, progress.ErrInvalidInput) {
			s.log.Warn("Некорректная позиция просмотра", slog.String("video_id", contentID), slog.String("error", err.Error()))
			return PushFailed
		}
		s.log.Error("Ошибка сохранения локального прогресса", slog.String("video_id", contentID), slog.String("error", err.Error()))
	}

	if categoryID == "" {
		return PushLocalOnly
	}

	key := progressKey(contentID)
	if !s.guard.Begin(key) {
		s.log.Debug("Отправка пропущена, предыдущая еще не завершена", slog.String("video_id", contentID))
		return PushSkipped
	}

	req := progress.SaveRequest{
		UserID:     s.sc.Identity.UserID,
		UserName:   s.sc.Identity.Name,
		EmployeeID: s.sc.Identity.EmployeeID,
		VideoID:    contentID,
		CategoryID: categoryID,
		Progress:   progress.Percentage(watchedSeconds, totalDuration),
		WatchTime:  watchedSeconds,
	}

	res := s.sc.Remote.SaveProgress(ctx, req)
	if !res.IsOk() {
		s.guard.Finish(key, StateRolledBack)
		s.log.Warn("Не удалось отправить прогресс", slog.String("video_id", contentID), slog.String("error", res.Failure().Error()))
		return PushFailed
	}

	s.guard.Finish(key, StateCommitted)
	return PushSent
}

// PullProgress прогресс пользователя с сервера, при недоступности сервера из локального кеша
func (s *Syncer) PullProgress(ctx context.Context) []progress.WatchProgress {
	records, err := s.sc.Remote.UserProgress(ctx, s.sc.Identity.UserID).Unwrap()
	if err != nil {
		s.log.Warn("Не удалось получить прогресс, используем локальный кеш", slog.String("error", err.Error()))
		return s.sc.Cache.Entries()
	}

	out := make([]progress.WatchProgress, 0, len(records))
	for _, r := range records {
		out = append(out, progress.WatchProgress{
			ContentID:      r.VideoID,
			WatchedSeconds: r.WatchTime,
			Completed:      r.Progress >= progress.CompletionThreshold*100,
			LastWatchedAt:  r.LastWatched,
		})
	}
	return out
}

// PullAttendanceLog отметки за месяц. При ошибке возвращается ранее сохраненный список без изменений.
func (s *Syncer) PullAttendanceLog(ctx context.Context, month attendance.YearMonth) []time.Time {
	if s.sc.Identity.Anonymous() {
		return nil
	}

	key := session.AttendanceLogKey(s.sc.Identity.EmployeeID, month.String())

	logs, err := s.sc.Remote.AttendanceLogs(ctx, s.sc.Identity.EmployeeID, month.String()).Unwrap()
	if err != nil {
		s.log.Warn("Не удалось получить журнал присутствия, используем сохраненный",
			slog.String("month", month.String()),
			slog.String("error", err.Error()),
		)
		var cached []attendance.Log
		if _, lerr := store.LoadJSON(s.sc.Store, key, &cached, s.log); lerr != nil {
			s.log.Error("Ошибка чтения сохраненного журнала", slog.String("error", lerr.Error()))
		}
		return attendance.Timestamps(cached)
	}

	if err := store.SaveJSON(s.sc.Store, key, logs); err != nil {
		s.log.Error("Ошибка сохранения журнала присутствия", slog.String("error", err.Error()))
	}

	return attendance.Timestamps(logs)
}

// ToggleAttendance оптимистично меняет отметку за сегодня. При неудаче зеркало возвращается
// к точному снимку до запроса, и возвращается *SyncError. При успехе зеркало заменяется
// записью сервера.
func (s *Syncer) ToggleAttendance(ctx context.Context, present bool) (user.SyncState, error) {
	if s.sc.Identity.Anonymous() {
		return user.SyncState{}, ErrNotLoggedIn
	}

	mirror := s.sc.Mirror
	key := attendanceKey(s.sc.Identity.EmployeeID)

	if !s.guard.Begin(key) {
		state, _ := mirror.State()
		return state, ErrMutationPending
	}

	snapshot := mirror.Snapshot()

	optimistic, ok := mirror.State()
	if !ok {
		optimistic = user.SyncState{
			ID:         s.sc.Identity.UserID,
			Name:       s.sc.Identity.Name,
			EmployeeID: s.sc.Identity.EmployeeID,
		}
	}
	optimistic.Attendance = present

	if err := mirror.Apply(optimistic); err != nil {
		s.guard.Finish(key, StateRolledBack)
		return user.SyncState{}, fmt.Errorf("ошибка локальной отметки: %w", err)
	}

	u, err := s.sc.Remote.SetAttendance(ctx, s.sc.Identity.EmployeeID, present).Unwrap()
	if err != nil {
		s.guard.Finish(key, StateRolledBack)

		serr := &SyncError{Op: "отметка присутствия", Err: err}
		if rerr := mirror.Restore(snapshot); rerr != nil {
			s.log.Error("Ошибка отката отметки", slog.String("error", rerr.Error()))
			return user.SyncState{}, errors.Join(serr, rerr)
		}

		s.log.Warn("Отметка не сохранена, изменения откачены", slog.String("error", err.Error()))
		state, _ := mirror.State()
		return state, serr
	}

	committed := user.StateFromUser(u)
	if err := mirror.Commit(committed); err != nil {
		s.guard.Finish(key, StateCommitted)
		return committed, fmt.Errorf("ошибка сохранения снимка пользователя: %w", err)
	}

	s.guard.Finish(key, StateCommitted)
	s.log.Info("Отметка присутствия сохранена", slog.Bool("present", committed.Attendance))

	return committed, nil
}
