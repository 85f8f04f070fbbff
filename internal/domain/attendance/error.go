package attendance

import "errors"

var (
	ErrInvalidMonth    = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidEmployee = errors.New("invalid employee id")
)
