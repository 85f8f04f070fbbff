package attendance

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Toggle(ctx context.Context, employeeID string, present bool) (user.User, error) {
	args := m.Called(ctx, employeeID, present)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) LogsForMonth(ctx context.Context, employeeID string, month attendance.YearMonth) ([]attendance.Log, error) {
	args := m.Called(ctx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.Log), args.Error(1)
}

var now = time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	apierror.Install()
	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, clock.NewManual(now), slog.Default(), nil).SetupRoutes(api)
	return api, svc
}

func TestHandler_Toggle(t *testing.T) {
	api, svc := setup(t)

	svc.On("Toggle", mock.Anything, "21716023", true).
		Return(user.User{ID: "employee_21716023", EmployeeID: "21716023", Attendance: true}, nil)

	resp := api.Post("/api/v1/users/21716023/attendance?v=1", map[string]any{"attendance": true})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"attendance":true`)
	svc.AssertExpectations(t)
}

func TestHandler_Toggle_BadEmployeeID(t *testing.T) {
	api, svc := setup(t)

	resp := api.Post("/api/v1/users/12345/attendance", map[string]any{"attendance": true})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Logs_DefaultsToCurrentMonth(t *testing.T) {
	api, svc := setup(t)

	logs := []attendance.Log{{Timestamp: now}}
	svc.On("LogsForMonth", mock.Anything, "21716023", attendance.YearMonth{Year: 2024, Month: time.February}).
		Return(logs, nil)

	resp := api.Get("/api/v1/users/21716023/attendance/logs")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"timestamp":"2024-02-14T09:00:00Z"`)
}

func TestHandler_Logs_InvalidMonth(t *testing.T) {
	api, _ := setup(t)

	resp := api.Get("/api/v1/users/21716023/attendance/logs?month=2024-13")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
}
