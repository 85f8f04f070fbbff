package attendance

import (
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/user"
)

type toggleInput struct {
	EmployeeID string `path:"employeeId" pattern:"^2[0-9]{7}$" doc:"Табельный номер"`
	V          string `query:"v"`
	Body       user.AttendanceRequest
}

type toggleOutput struct {
	Body user.AttendanceResponse
}

type logsInput struct {
	EmployeeID string `path:"employeeId" pattern:"^2[0-9]{7}$"`
	Month      string `query:"month" doc:"YYYY-MM, по умолчанию текущий месяц"`
	V          string `query:"v"`
}

type logsOutput struct {
	Body attendance.LogsResponse
}
