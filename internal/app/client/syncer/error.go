package syncer

import (
	"errors"
	"fmt"
)

var (
	ErrMutationPending = errors.New("предыдущее изменение еще не завершено")
	ErrNotLoggedIn     = errors.New("требуется вход")
)

// SyncError сервер недоступен или отклонил изменение. Локальное состояние уже откатено.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: изменения не сохранены: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
