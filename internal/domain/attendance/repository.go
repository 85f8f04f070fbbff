package attendance

import "context"

// Repository хранилище отметок сотрудника
type Repository interface {
	Logs(ctx context.Context, employeeID string) ([]Log, error)
	SaveLogs(ctx context.Context, employeeID string, logs []Log) error
}
