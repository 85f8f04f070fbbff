package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/user"
)

// Mirror локальная копия серверной записи текущего пользователя.
// Хранит исходные байты, чтобы откат возвращал ровно то, что было сохранено.
type Mirror struct {
	store store.Store
	log   *slog.Logger

	mu    sync.RWMutex
	raw   []byte
	state user.SyncState
	ok    bool
}

func NewMirror(s store.Store, log *slog.Logger) (*Mirror, error) {
	m := &Mirror{
		store: s,
		log:   log.With(slog.String("component", "mirror")),
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mirror) load() error {
	var state user.SyncState
	ok, err := store.LoadJSON(m.store, CurrentUserKey, &state, m.log)
	if err != nil {
		return fmt.Errorf("ошибка чтения текущего пользователя: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ok = ok
	m.state = state
	m.raw = nil
	if ok {
		raw, _, err := m.store.Get(CurrentUserKey)
		if err != nil {
			return fmt.Errorf("ошибка чтения текущего пользователя: %w", err)
		}
		m.raw = raw
	}
	return nil
}

// State текущее значение. Во время запроса это оптимистичное значение.
func (m *Mirror) State() (user.SyncState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state, m.ok
}

// Snapshot копия сохраненных байтов
func (m *Mirror) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{raw: append([]byte(nil), m.raw...), ok: m.ok}
}

// Apply записывает значение как текущее
func (m *Mirror) Apply(state user.SyncState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("ошибка маршалинга пользователя: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(CurrentUserKey, raw); err != nil {
		return err
	}
	m.raw, m.state, m.ok = raw, state, true
	return nil
}

// Commit записывает подтвержденное значение и снимок по табельному номеру
func (m *Mirror) Commit(state user.SyncState) error {
	if err := m.Apply(state); err != nil {
		return err
	}
	if state.EmployeeID == "" {
		return nil
	}
	return store.SaveJSON(m.store, SnapshotKey(state.EmployeeID), state)
}

// Restore возвращает ранее снятый снимок без пересчета
func (m *Mirror) Restore(s Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !s.ok {
		if err := m.store.Delete(CurrentUserKey); err != nil {
			return err
		}
		m.raw, m.state, m.ok = nil, user.SyncState{}, false
		return nil
	}

	var state user.SyncState
	if err := json.Unmarshal(s.raw, &state); err != nil {
		return fmt.Errorf("ошибка разбора снимка: %w", err)
	}
	if err := m.store.Set(CurrentUserKey, s.raw); err != nil {
		return err
	}
	m.raw, m.state, m.ok = append([]byte(nil), s.raw...), state, true
	return nil
}

// Clear удаляет текущего пользователя
func (m *Mirror) Clear() error {
	return m.Restore(Snapshot{})
}

// Snapshot неизменяемый снимок сохраненного состояния
type Snapshot struct {
	raw []byte
	ok  bool
}

func (s Snapshot) Bytes() []byte {
	return append([]byte(nil), s.raw...)
}

func (s Snapshot) Present() bool {
	return s.ok
}
