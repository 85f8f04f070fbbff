package transport

import (
	"errors"
	"fmt"
)

// Kind категория ошибки обращения к серверу
type Kind int

const (
	// KindNetwork ответа нет: соединение, таймаут, отмена
	KindNetwork Kind = iota + 1
	// KindRejected сервер ответил не 2xx
	KindRejected
	// KindDecode тело успешного ответа не разобрано
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRejected:
		return "rejected"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRejected && e.Message != "":
		return fmt.Sprintf("%s: сервер отклонил запрос (%d): %s", e.Op, e.Status, e.Message)
	case e.Kind == KindRejected:
		return fmt.Sprintf("%s: сервер отклонил запрос (%d)", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind проверяет категорию ошибки в цепочке
func IsKind(err error, kind Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}

// StatusOf код ответа сервера или 0
func StatusOf(err error) int {
	var te *Error
	if errors.As(err, &te) {
		return te.Status
	}
	return 0
}
