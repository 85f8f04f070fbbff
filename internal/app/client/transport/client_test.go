package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learninghub/internal/app/server/api"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
	"learninghub/internal/infrastructure/storage/memory"
	"learninghub/internal/utils/clock"
	"learninghub/internal/utils/logger"
)

const token = "test-token"

var now = time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	deps := api.Deps{Store: memory.New(), StorageName: "memory", Token: token, Clock: clock.NewManual(now)}
	services := api.NewServices(deps, logger.Discard())
	require.NoError(t, services.Catalog.Seed(context.Background()))

	srv := httptest.NewServer(api.NewWithServices(deps, services, logger.Discard()))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(baseURL string) *Client {
	return New(Options{BaseURL: baseURL, Token: token, Timeout: 5 * time.Second, Clock: clock.NewManual(now)}, logger.Discard())
}

func TestClient_AgainstServer(t *testing.T) {
	srv := newAPIServer(t)
	c := newClient(srv.URL)
	ctx := context.Background()

	health, err := c.Health(ctx).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)

	u, err := c.UpsertUser(ctx, user.UpsertRequest{UserID: "employee_21716023", Name: "박영록", EmployeeID: "21716023"}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "employee_21716023", u.ID)

	_, err = c.SaveProgress(ctx, progress.SaveRequest{
		UserID: "employee_21716023", VideoID: "basic-1", CategoryID: "basic", Progress: 91.7, WatchTime: 550,
	}).Unwrap()
	require.NoError(t, err)

	records, err := c.UserProgress(ctx, "employee_21716023").Unwrap()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 91.7, records[0].Progress)

	marked, err := c.SetAttendance(ctx, "21716023", true).Unwrap()
	require.NoError(t, err)
	assert.True(t, marked.Attendance)

	logs, err := c.AttendanceLogs(ctx, "21716023", "2024-02").Unwrap()
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	categories, err := c.Categories(ctx).Unwrap()
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	videos, err := c.Videos(ctx, categories[0].ID).Unwrap()
	require.NoError(t, err)
	assert.NotEmpty(t, videos)

	report, err := c.Report(ctx).Unwrap()
	require.NoError(t, err)
	assert.Len(t, report.Users, 1)
}

func TestClient_Rejected(t *testing.T) {
	srv := newAPIServer(t)
	c := New(Options{BaseURL: srv.URL, Token: "wrong", Timeout: time.Second}, logger.Discard())

	res := c.Categories(context.Background())

	require.False(t, res.IsOk())
	assert.Equal(t, KindRejected, res.Failure().Kind)
	assert.Equal(t, http.StatusUnauthorized, res.Failure().Status)
	assert.Equal(t, "Unauthorized", res.Failure().Message)

	_, err := res.Unwrap()
	assert.True(t, IsKind(err, KindRejected))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := newClient(url).AttendanceLogs(context.Background(), "21716023", "2024-02")

	require.False(t, res.IsOk())
	assert.Equal(t, KindNetwork, res.Failure().Kind)
	assert.Nil(t, res.ValueOr(nil))
}

func TestClient_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"categories":`))
	}))
	t.Cleanup(srv.Close)

	res := newClient(srv.URL).Categories(context.Background())

	require.False(t, res.IsOk())
	assert.Equal(t, KindDecode, res.Failure().Kind)
}

func TestClient_SendsMonotonicCacheBuster(t *testing.T) {
	var (
		mu     sync.Mutex
		values []int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := strconv.ParseInt(r.URL.Query().Get("v"), 10, 64)
		if err == nil {
			mu.Lock()
			values = append(values, v)
			mu.Unlock()
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	// часы стоят на месте, значения все равно должны расти
	c := newClient(srv.URL)
	for n := 0; n < 3; n++ {
		require.True(t, c.SaveProgress(context.Background(), progress.SaveRequest{UserID: "u", VideoID: "v"}).IsOk())
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, values, 3)
	assert.Equal(t, now.UnixMilli(), values[0])
	assert.Less(t, values[0], values[1])
	assert.Less(t, values[1], values[2])
}

func TestCacheBuster_ClockGoesBackwards(t *testing.T) {
	clk := clock.NewManual(now)
	b := NewCacheBuster(clk)

	first, _ := strconv.ParseInt(b.Next(), 10, 64)
	clk.Set(now.Add(-time.Hour))
	second, _ := strconv.ParseInt(b.Next(), 10, 64)

	assert.Equal(t, first+1, second)
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindRejected, Op: "отметка присутствия", Status: 403, Message: "employee is not in the allow-list"}
	assert.Equal(t, "отметка присутствия: сервер отклонил запрос (403): employee is not in the allow-list", err.Error())
	assert.Equal(t, "network", KindNetwork.String())
}
