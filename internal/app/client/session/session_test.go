package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learninghub/internal/app/client/store"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/logger"
)

func newManager(t *testing.T, s store.Store) *Manager {
	t.Helper()
	m, err := NewManager(s, user.NewValidator(), logger.Discard())
	require.NoError(t, err)
	return m
}

func TestManager_Login(t *testing.T) {
	s := store.NewMemory()
	m := newManager(t, s)

	state, err := m.Login(user.LoginRequest{EmployeeID: " 21716023 ", Name: "박영록"})
	require.NoError(t, err)

	assert.Equal(t, "employee_21716023", state.ID)
	assert.Equal(t, "21716023", state.EmployeeID)
	assert.True(t, state.IsNewUser)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, state, current)

	_, exists, err := s.Get(SnapshotKey("21716023"))
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, m.Logout())
	_, ok = m.Current()
	assert.False(t, ok)

	again, err := m.Login(user.LoginRequest{EmployeeID: "21716023", Name: "박영록"})
	require.NoError(t, err)
	assert.False(t, again.IsNewUser)
}

func TestManager_Login_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  user.LoginRequest
	}{
		{name: "short employee id", req: user.LoginRequest{EmployeeID: "2171602", Name: "박영록"}},
		{name: "wrong first digit", req: user.LoginRequest{EmployeeID: "11716023", Name: "박영록"}},
		{name: "latin name", req: user.LoginRequest{EmployeeID: "21716023", Name: "Park"}},
		{name: "one syllable", req: user.LoginRequest{EmployeeID: "21716023", Name: "박"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManager(t, store.NewMemory())

			_, err := m.Login(tt.req)
			assert.ErrorIs(t, err, user.ErrInvalidInput)

			_, ok := m.Current()
			assert.False(t, ok)
		})
	}
}

func TestManager_Identity(t *testing.T) {
	s := store.NewMemory()
	m := newManager(t, s)

	anon, err := m.Identity()
	require.NoError(t, err)
	assert.True(t, anon.Anonymous())
	assert.True(t, strings.HasPrefix(anon.UserID, "user_"))

	again, err := m.Identity()
	require.NoError(t, err)
	assert.Equal(t, anon.UserID, again.UserID)

	_, err = m.Login(user.LoginRequest{EmployeeID: "21716023", Name: "박영록"})
	require.NoError(t, err)

	emp, err := m.Identity()
	require.NoError(t, err)
	assert.False(t, emp.Anonymous())
	assert.Equal(t, "video-progress-21716023", emp.ProgressKey())
	assert.NotEqual(t, anon.ProgressKey(), emp.ProgressKey())
}

func TestManager_CorruptCurrentUserIsDiscarded(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(CurrentUserKey, []byte("{not json")))

	m := newManager(t, s)

	_, ok := m.Current()
	assert.False(t, ok)

	_, exists, err := s.Get(CurrentUserKey)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMirror_RestoreIsByteExact(t *testing.T) {
	s := store.NewMemory()
	// порядок и пробелы отличаются от того, что выдал бы json.Marshal
	original := []byte(`{"employeeId":"21716023", "id":"employee_21716023","name":"박영록","attendance":false,"isNewUser":false}`)
	require.NoError(t, s.Set(CurrentUserKey, original))

	m, err := NewMirror(s, logger.Discard())
	require.NoError(t, err)

	snap := m.Snapshot()
	state, _ := m.State()
	state.Attendance = true
	require.NoError(t, m.Apply(state))

	require.NoError(t, m.Restore(snap))

	raw, _, err := s.Get(CurrentUserKey)
	require.NoError(t, err)
	assert.Equal(t, original, raw)

	restored, ok := m.State()
	require.True(t, ok)
	assert.False(t, restored.Attendance)
}
