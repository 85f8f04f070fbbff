package allowlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const initial = `
employees:
  - employeeId: "21716023"
    name: 박영록
  - employeeId: "22222222"
    name: 또타
  - employeeId: ""
    name: 빈칸
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestParse(t *testing.T) {
	byID, err := Parse([]byte(initial))
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "박영록", byID["21716023"])

	_, err = Parse([]byte("employees: [::"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	writeFile(t, path, initial)

	l, err := Load(path, slog.Default())
	require.NoError(t, err)

	name, ok := l.Lookup(" 22222222 ")
	assert.True(t, ok)
	assert.Equal(t, "또타", name)

	_, ok = l.Lookup("29999999")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), slog.Default())
	assert.Error(t, err)
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	writeFile(t, path, initial)

	l, err := Load(path, slog.Default())
	require.NoError(t, err)

	writeFile(t, path, "employees: [::")
	assert.Error(t, l.Reload())
	assert.Equal(t, 2, l.Len())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	writeFile(t, path, initial)

	l, err := Load(path, slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.Watch(ctx))

	writeFile(t, path, initial+`  - employeeId: "21716045"
    name: 오현석
`)

	assert.Eventually(t, func() bool {
		_, ok := l.Lookup("21716045")
		return ok
	}, 3*time.Second, 20*time.Millisecond)
}
