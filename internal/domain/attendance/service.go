package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

type Servicer interface {
	Toggle(ctx context.Context, employeeID string, present bool) (user.User, error)
	LogsForMonth(ctx context.Context, employeeID string, month YearMonth) ([]Log, error)
}

// UserMarker обновляет флаг присутствия в записи пользователя
type UserMarker interface {
	CheckAllowed(employeeID string) error
	SetAttendance(ctx context.Context, employeeID string, present bool) (user.User, error)
}

type Service struct {
	repo  Repository
	users UserMarker
	clock clock.Clock
	log   *slog.Logger
	mu    sync.Mutex
}

func NewService(repo Repository, users UserMarker, clk clock.Clock, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		clock: clk,
		log:   log.With(slog.String("component", "attendance_service")),
	}
}

// Toggle отмечает или снимает присутствие за сегодня. Повторная отметка ничего не меняет.
// Журнал не трогается, пока сотрудник не прошел проверку списка допуска.
func (s *Service) Toggle(ctx context.Context, employeeID string, present bool) (user.User, error) {
	if !user.IsEmployeeID(employeeID) {
		return user.User{}, ErrInvalidEmployee
	}
	if err := s.users.CheckAllowed(employeeID); err != nil {
		return user.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.repo.Logs(ctx, employeeID)
	if err != nil {
		return user.User{}, fmt.Errorf("load attendance logs: %w", err)
	}

	now := s.clock.Now().UTC()
	updated, changed := applyToggle(logs, now, present)
	if changed {
		if err := s.repo.SaveLogs(ctx, employeeID, updated); err != nil {
			return user.User{}, fmt.Errorf("save attendance logs: %w", err)
		}
	}

	u, err := s.users.SetAttendance(ctx, employeeID, present)
	if err != nil {
		return user.User{}, err
	}

	s.log.Info("attendance toggled",
		slog.String("employee_id", employeeID),
		slog.Bool("present", present),
		slog.Bool("changed", changed),
	)

	return u, nil
}

// LogsForMonth отметки сотрудника за месяц в порядке возрастания времени
func (s *Service) LogsForMonth(ctx context.Context, employeeID string, month YearMonth) ([]Log, error) {
	if !user.IsEmployeeID(employeeID) {
		return nil, ErrInvalidEmployee
	}

	logs, err := s.repo.Logs(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load attendance logs: %w", err)
	}

	out := make([]Log, 0, len(logs))
	for _, l := range logs {
		if month.Contains(l.Timestamp) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })

	return out, nil
}

func applyToggle(logs []Log, now time.Time, present bool) ([]Log, bool) {
	hasToday := false
	for _, l := range logs {
		if SameDay(l.Timestamp, now) {
			hasToday = true
			break
		}
	}

	switch {
	case present && !hasToday:
		return append(logs, Log{Timestamp: now}), true
	case !present && hasToday:
		kept := make([]Log, 0, len(logs))
		for _, l := range logs {
			if !SameDay(l.Timestamp, now) {
				kept = append(kept, l)
			}
		}
		return kept, true
	default:
		return logs, false
	}
}
