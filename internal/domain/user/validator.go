package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinNameLen = 2
	MaxNameLen = 5
)

var employeeIDPattern = regexp.MustCompile(`^2\d{7}$`)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateLogin(req LoginRequest) error
	ValidateUpsert(req UpsertRequest) error
}

// StructValidator валидатор на основе go-playground/validator
type StructValidator struct {
	v *validator.Validate
}

// NewValidator создает валидатор с правилами employee_id и hangul_name
func NewValidator() *StructValidator {
	v := validator.New()
	_ = v.RegisterValidation("employee_id", func(fl validator.FieldLevel) bool {
		return IsEmployeeID(fl.Field().String())
	})
	_ = v.RegisterValidation("hangul_name", func(fl validator.FieldLevel) bool {
		return IsHangulName(fl.Field().String())
	})

	return &StructValidator{v: v}
}

// ValidateLogin валидирует данные входа
func (s *StructValidator) ValidateLogin(req LoginRequest) error {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Name = strings.TrimSpace(req.Name)
	return s.validate(req)
}

// ValidateUpsert валидирует запрос сохранения пользователя
func (s *StructValidator) ValidateUpsert(req UpsertRequest) error {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Name = strings.TrimSpace(req.Name)
	return s.validate(req)
}

func (s *StructValidator) validate(req any) error {
	err := s.v.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "employee_id":
		return "employee id must be 8 digits starting with 2"
	case "hangul_name":
		return fmt.Sprintf("name must be %d-%d Hangul characters", MinNameLen, MaxNameLen)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// IsEmployeeID проверяет формат табельного номера
func IsEmployeeID(s string) bool {
	return employeeIDPattern.MatchString(strings.TrimSpace(s))
}

// IsHangulName имя из 2-5 слогов хангыля
func IsHangulName(s string) bool {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinNameLen || n > MaxNameLen {
		return false
	}
	for _, r := range s {
		if r < 0xAC00 || r > 0xD7A3 {
			return false
		}
	}
	return true
}
