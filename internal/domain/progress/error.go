package progress

import "errors"

var (
	ErrInvalidInput = errors.New("userId and videoId are required")
	ErrNotFound     = errors.New("progress not found")
)
