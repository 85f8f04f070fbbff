package transport

// Result итог обращения к серверу: значение или ошибка
type Result[T any] struct {
	value T
	err   *Error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Err[T any](e *Error) Result[T] {
	return Result[T]{err: e}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Failure() *Error {
	return r.err
}

// Unwrap значение и error. nil ошибка приходит как nil интерфейс.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// ValueOr значение или запасной вариант при ошибке
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}
