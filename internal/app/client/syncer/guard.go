package syncer

import "sync"

// MutationState состояние изменения по ключу
type MutationState int

const (
	StateIdle MutationState = iota
	StatePending
	StateCommitted
	StateRolledBack
)

func (s MutationState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return "idle"
	}
}

// MutationGuard не дает начать второе изменение по ключу, пока первое не завершено
type MutationGuard struct {
	mu     sync.Mutex
	states map[string]MutationState
}

func NewMutationGuard() *MutationGuard {
	return &MutationGuard{states: make(map[string]MutationState)}
}

// Begin переводит ключ в pending. false, если по ключу уже идет изменение.
func (g *MutationGuard) Begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.states[key] == StatePending {
		return false
	}
	g.states[key] = StatePending
	return true
}

// Finish фиксирует итог: StateCommitted или StateRolledBack
func (g *MutationGuard) Finish(key string, state MutationState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.states[key] = state
}

func (g *MutationGuard) State(key string) MutationState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.states[key]
}

func attendanceKey(employeeID string) string {
	return "attendance:" + employeeID
}

func progressKey(contentID string) string {
	return "progress:" + contentID
}
