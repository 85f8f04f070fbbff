package user

// UpsertRequest тело запроса создания или обновления пользователя
type UpsertRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Name       string `json:"name" validate:"required,hangul_name"`
	EmployeeID string `json:"employeeId" validate:"required,employee_id"`
	Department string `json:"department,omitempty"`
}

// LoginRequest данные входа сотрудника
type LoginRequest struct {
	EmployeeID string `validate:"required,employee_id"`
	Name       string `validate:"required,hangul_name"`
}

type UpsertResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type AttendanceRequest struct {
	Attendance bool `json:"attendance"`
}

type AttendanceResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
