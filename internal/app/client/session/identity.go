package session

import "learninghub/internal/domain/user"

const (
	CurrentUserKey = "currentUser"
	AnonymousIDKey = "learningHubId"

	anonymousPrefix   = "user_"
	progressKeyPrefix = "video-progress-"
)

// Identity активный пользователь сессии
type Identity struct {
	UserID     string
	EmployeeID string
	Name       string
}

// Anonymous true, если вход не выполнен
func (i Identity) Anonymous() bool {
	return i.EmployeeID == ""
}

// ProgressKey ключ кеша прогресса. У каждого пользователя свой.
func (i Identity) ProgressKey() string {
	if i.Anonymous() {
		return progressKeyPrefix + i.UserID
	}
	return progressKeyPrefix + i.EmployeeID
}

// SnapshotKey ключ последнего известного состояния сотрудника
func SnapshotKey(employeeID string) string {
	return "user_" + employeeID
}

// AttendanceLogKey ключ кеша журнала присутствия за месяц
func AttendanceLogKey(employeeID, month string) string {
	return "attendance-logs-" + employeeID + "-" + month
}

func identityFromState(s user.SyncState) Identity {
	return Identity{
		UserID:     s.ID,
		EmployeeID: s.EmployeeID,
		Name:       s.Name,
	}
}
