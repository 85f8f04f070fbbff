package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"learninghub/internal/infrastructure/storage/memory"
	"learninghub/internal/utils/clock"
)

const token = "test-token"

type roster map[string]string

func (r roster) Lookup(employeeID string) (string, bool) {
	name, ok := r[employeeID]
	return name, ok
}

func newServer(t *testing.T, r roster) (*httptest.Server, *clock.Manual) {
	t.Helper()

	clk := clock.NewManual(time.Date(2024, time.February, 14, 9, 30, 0, 0, time.UTC))
	deps := Deps{
		Store:       memory.New(),
		StorageName: "memory",
		Token:       token,
		Clock:       clk,
	}
	if r != nil {
		deps.Roster = r
	}

	services := NewServices(deps, slog.Default())
	require.NoError(t, services.Catalog.Seed(context.Background()))

	srv := httptest.NewServer(NewWithServices(deps, services, slog.Default()))
	t.Cleanup(srv.Close)

	return srv, clk
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, auth bool) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)

	return resp, out
}

func TestAPI_HealthIsPublic(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/health", "", false)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "memory", body["storage"])
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-store")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestAPI_RequiresToken(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/users", "", false)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestAPI_ProgressRoundTrip(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/users",
		`{"userId":"employee_21716023","name":"박영록","employeeId":"21716023"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/api/v1/progress?v=1",
		`{"userId":"employee_21716023","videoId":"basic-1","categoryId":"basic","progress":95,"watchTime":1600}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = do(t, srv, http.MethodGet, "/api/v1/progress/employee_21716023?v=2", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	records, ok := body["progress"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "basic-1", records[0].(map[string]any)["videoId"])

	resp, body = do(t, srv, http.MethodGet, "/api/v1/admin/progress", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	users, ok := body["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)
	summary := users[0].(map[string]any)
	assert.Equal(t, "박영록", summary["userName"])
	assert.EqualValues(t, 1, summary["completedVideos"])
}

func TestAPI_AttendanceToggle(t *testing.T) {
	srv, clk := newServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/api/v1/users/21716023/attendance?v=1", `{"attendance":true}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["user"].(map[string]any)["attendance"])

	// повторная отметка не создает дубль
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/users/21716023/attendance?v=2", `{"attendance":true}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clk.Advance(24 * time.Hour)
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/users/21716023/attendance?v=3", `{"attendance":true}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/users/21716023/attendance/logs?month=2024-02", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs, ok := body["logs"].([]any)
	require.True(t, ok)
	assert.Len(t, logs, 2)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/users/21716023/attendance/logs?month=2024-03", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["logs"])
}

func TestAPI_Allowlist(t *testing.T) {
	srv, _ := newServer(t, roster{"21716023": "박영록"})

	resp, body := do(t, srv, http.MethodPost, "/api/v1/users",
		`{"userId":"employee_29999999","name":"김철수","employeeId":"29999999"}`, true)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, body = do(t, srv, http.MethodPost, "/api/v1/users/29999999/attendance", `{"attendance":true}`, true)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	// отклоненная отметка не оставляет записей в журнале
	resp, body = do(t, srv, http.MethodGet, "/api/v1/users/29999999/attendance/logs?month=2024-02", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["logs"])

	resp, body = do(t, srv, http.MethodGet, "/api/v1/users", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["users"])

	resp, body = do(t, srv, http.MethodPost, "/api/v1/users/21716023/attendance", `{"attendance":true}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "박영록", body["user"].(map[string]any)["name"])
}

func TestAPI_UpsertSameEmployeeKeepsOneRow(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/users",
		`{"userId":"employee_21716023","name":"박영록","employeeId":"21716023"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/users",
		`{"userId":"user_0f8c","name":"박영록","employeeId":"21716023"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/users", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["users"], 1)
}

func TestAPI_SchemasHaveDistinctNames(t *testing.T) {
	deps := Deps{Store: memory.New(), StorageName: "memory", Token: token}

	var mux http.Handler
	require.NotPanics(t, func() { mux = New(deps, slog.Default()) })

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	resp, body := do(t, srv, http.MethodGet, "/openapi.json", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	components, ok := body["components"].(map[string]any)
	require.True(t, ok)
	schemas, ok := components["schemas"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"RecordsResponse", "UsersResponse", "Report", "LogsResponse", "VideosResponse", "StatusResponse"} {
		assert.Contains(t, schemas, name)
	}
}

func TestAPI_Catalog(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/categories", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["categories"], 3)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/videos/unknown", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
