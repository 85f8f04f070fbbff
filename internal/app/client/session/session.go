// Package session вход сотрудника, анонимный идентификатор и зеркало текущего пользователя.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/user"
)

type Manager struct {
	store     store.Store
	validator user.Validator
	mirror    *Mirror
	log       *slog.Logger
}

func NewManager(s store.Store, validator user.Validator, log *slog.Logger) (*Manager, error) {
	mirror, err := NewMirror(s, log)
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:     s,
		validator: validator,
		mirror:    mirror,
		log:       log.With(slog.String("component", "session")),
	}, nil
}

func (m *Manager) Mirror() *Mirror {
	return m.mirror
}

// Validate проверяет данные входа
func (m *Manager) Validate(req user.LoginRequest) error {
	return m.validator.ValidateLogin(req)
}

// Login сохраняет сотрудника как текущего пользователя. isNewUser выставляется,
// если раньше с этого устройства этот сотрудник не входил.
func (m *Manager) Login(req user.LoginRequest) (user.SyncState, error) {
	if err := m.Validate(req); err != nil {
		return user.SyncState{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)

	var prev user.SyncState
	known, err := store.LoadJSON(m.store, SnapshotKey(employeeID), &prev, m.log)
	if err != nil {
		return user.SyncState{}, fmt.Errorf("ошибка чтения снимка пользователя: %w", err)
	}

	state := user.SyncState{
		ID:         user.EmployeeUserID(employeeID),
		Name:       strings.TrimSpace(req.Name),
		EmployeeID: employeeID,
		Attendance: prev.Attendance,
		IsNewUser:  !known,
	}

	if err := m.mirror.Commit(state); err != nil {
		return user.SyncState{}, fmt.Errorf("ошибка сохранения текущего пользователя: %w", err)
	}

	m.log.Info("Вход выполнен", slog.String("employee_id", employeeID), slog.Bool("new_user", state.IsNewUser))

	return state, nil
}

// Logout удаляет текущего пользователя. Снимки и кеш прогресса сохраняются.
func (m *Manager) Logout() error {
	if err := m.mirror.Clear(); err != nil {
		return fmt.Errorf("ошибка очистки текущего пользователя: %w", err)
	}
	return nil
}

// Current текущий пользователь, если вход выполнен
func (m *Manager) Current() (user.SyncState, bool) {
	return m.mirror.State()
}

// Identity активная личность: сотрудник или анонимный user_<uuid>
func (m *Manager) Identity() (Identity, error) {
	if state, ok := m.mirror.State(); ok && state.EmployeeID != "" {
		return identityFromState(state), nil
	}

	id, err := m.AnonymousID()
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: id}, nil
}

// AnonymousID постоянный идентификатор устройства, создается при первом обращении
func (m *Manager) AnonymousID() (string, error) {
	var id string
	ok, err := store.LoadJSON(m.store, AnonymousIDKey, &id, m.log)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения анонимного id: %w", err)
	}
	if ok && strings.HasPrefix(id, anonymousPrefix) {
		return id, nil
	}

	id = anonymousPrefix + uuid.NewString()
	if err := store.SaveJSON(m.store, AnonymousIDKey, id); err != nil {
		return "", fmt.Errorf("ошибка сохранения анонимного id: %w", err)
	}
	return id, nil
}
