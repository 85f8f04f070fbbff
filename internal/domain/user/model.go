package user

import (
	"strings"
	"time"
)

const employeeIDPrefix = "employee_"

// User серверная запись пользователя из users_list
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employeeId"`
	Department string    `json:"department"`
	Attendance bool      `json:"attendance"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SyncState клиентское зеркало записи пользователя
type SyncState struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Attendance bool   `json:"attendance"`
	IsNewUser  bool   `json:"isNewUser"`
}

// StateFromUser строит зеркало из серверной записи
func StateFromUser(u User) SyncState {
	return SyncState{
		ID:         u.ID,
		Name:       u.Name,
		EmployeeID: u.EmployeeID,
		Attendance: u.Attendance,
	}
}

// EmployeeUserID идентификатор пользователя по табельному номеру
func EmployeeUserID(employeeID string) string {
	return employeeIDPrefix + strings.TrimSpace(employeeID)
}
