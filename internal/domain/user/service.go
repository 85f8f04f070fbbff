package user

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"learninghub/internal/utils/clock"
)

type Servicer interface {
	List(ctx context.Context) ([]User, error)
	Upsert(ctx context.Context, req UpsertRequest) (User, error)
	SetAttendance(ctx context.Context, employeeID string, present bool) (User, error)
	Names(ctx context.Context) (map[string]string, error)
}

// Roster список допущенных сотрудников
type Roster interface {
	Lookup(employeeID string) (name string, ok bool)
}

type Service struct {
	repo      Repository
	validator Validator
	roster    Roster
	clock     clock.Clock
	log       *slog.Logger
	// users_list хранится одним значением, запись делается через read-modify-write
	mu sync.Mutex
}

// NewService создает сервис пользователей. roster может быть nil, тогда допускаются все.
func NewService(repo Repository, validator Validator, roster Roster, clk clock.Clock, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		roster:    roster,
		clock:     clk,
		log:       log.With(slog.String("component", "user_service")),
	}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Upsert создает пользователя или обновляет существующего, сохраняя createdAt
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (User, error) {
	if err := s.validator.ValidateUpsert(req); err != nil {
		s.log.Debug("validation failed", "employee_id", req.EmployeeID, "error", err)
		return User{}, err
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Name = strings.TrimSpace(req.Name)

	if !s.allowed(req.EmployeeID, req.Name) {
		return User{}, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, fmt.Errorf("list users: %w", err)
	}

	now := s.clock.Now().UTC()
	u := User{
		ID:         req.UserID,
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	idx := indexByEmployee(users, req.EmployeeID)
	if idx == -1 {
		users = append(users, u)
	} else {
		u.CreatedAt = users[idx].CreatedAt
		u.Attendance = users[idx].Attendance
		users[idx] = u
	}

	if err := s.repo.SaveAll(ctx, users); err != nil {
		return User{}, fmt.Errorf("save users: %w", err)
	}

	s.log.Info("user saved", slog.String("user_id", u.ID), slog.Bool("created", idx == -1))

	return u, nil
}

// SetAttendance выставляет флаг присутствия. Если пользователя нет в списке, он создается.
func (s *Service) SetAttendance(ctx context.Context, employeeID string, present bool) (User, error) {
	employeeID = strings.TrimSpace(employeeID)
	if !IsEmployeeID(employeeID) {
		return User{}, fmt.Errorf("%w: employee id must be 8 digits starting with 2", ErrInvalidInput)
	}

	if err := s.CheckAllowed(employeeID); err != nil {
		return User{}, err
	}
	name := ""
	if s.roster != nil {
		name, _ = s.roster.Lookup(employeeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, fmt.Errorf("list users: %w", err)
	}

	now := s.clock.Now().UTC()
	idx := indexByEmployee(users, employeeID)
	if idx == -1 {
		users = append(users, User{
			ID:         EmployeeUserID(employeeID),
			Name:       name,
			EmployeeID: employeeID,
			CreatedAt:  now,
		})
		idx = len(users) - 1
	}

	users[idx].Attendance = present
	users[idx].UpdatedAt = now

	if err := s.repo.SaveAll(ctx, users); err != nil {
		return User{}, fmt.Errorf("save users: %w", err)
	}

	return users[idx], nil
}

// Names отображение id пользователя в имя
func (s *Service) Names(ctx context.Context) (map[string]string, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// CheckAllowed ErrNotAuthorized, если сотрудника нет в списке допуска
func (s *Service) CheckAllowed(employeeID string) error {
	if s.roster == nil {
		return nil
	}
	if _, ok := s.roster.Lookup(employeeID); !ok {
		return ErrNotAuthorized
	}
	return nil
}

func (s *Service) allowed(employeeID, name string) bool {
	if s.roster == nil {
		return true
	}
	n, ok := s.roster.Lookup(employeeID)
	return ok && n == name
}

func indexByEmployee(users []User, employeeID string) int {
	for i := range users {
		if users[i].EmployeeID == employeeID {
			return i
		}
	}
	return -1
}
