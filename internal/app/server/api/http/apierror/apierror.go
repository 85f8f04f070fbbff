// Package apierror единый формат ошибок API: {"success": false, "error": "..."}
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/catalog"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
)

type Error struct {
	status  int
	Success bool     `json:"success"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// New создает ошибку API
func New(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) == 0 {
		details = nil
	}

	if msg == "" {
		msg = http.StatusText(status)
	}

	return &Error{
		status:  status,
		Message: msg,
		Details: details,
	}
}

// Install подменяет конструктор ошибок huma, чтобы ошибки валидации тоже шли в общем формате
func Install() {
	huma.NewError = New
}

// FromDomain сопоставляет доменные ошибки со статусами HTTP
func FromDomain(err error) huma.StatusError {
	var se huma.StatusError
	switch {
	case errors.As(err, &se):
		return se
	case errors.Is(err, user.ErrNotAuthorized):
		return New(http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrNotFound), errors.Is(err, catalog.ErrCategoryNotFound):
		return New(http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, progress.ErrInvalidInput),
		errors.Is(err, attendance.ErrInvalidEmployee),
		errors.Is(err, attendance.ErrInvalidMonth):
		return New(http.StatusBadRequest, err.Error())
	default:
		return New(http.StatusInternalServerError, "internal server error")
	}
}

// IsServerError true для ошибок, которые нужно логировать на уровне error
func IsServerError(err huma.StatusError) bool {
	return err.GetStatus() >= http.StatusInternalServerError
}
