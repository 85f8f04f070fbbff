package progress

// SaveRequest тело запроса сохранения прогресса
type SaveRequest struct {
	UserID     string  `json:"userId" doc:"Идентификатор пользователя (employee_<id> или user_<uuid>)"`
	UserName   string  `json:"userName,omitempty"`
	EmployeeID string  `json:"employeeId,omitempty"`
	VideoID    string  `json:"videoId"`
	CategoryID string  `json:"categoryId"`
	Progress   float64 `json:"progress" minimum:"0" maximum:"100" doc:"Процент просмотра"`
	WatchTime  float64 `json:"watchTime" minimum:"0" doc:"Просмотрено секунд"`
}

type SaveResponse struct {
	Success bool `json:"success"`
}

type RecordsResponse struct {
	Progress []Record `json:"progress"`
}
