package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotAuthorized = errors.New("employee is not in the allow-list")
)
