package attendance

import (
	"fmt"
	"time"
)

// YearMonth календарный месяц. Все вычисления ведутся в UTC.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth разбирает строку вида 2024-02
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf месяц, в который попадает момент времени
func MonthOf(t time.Time) YearMonth {
	t = t.UTC()
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// First полночь первого дня месяца
func (m YearMonth) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days количество дней в месяце
func (m YearMonth) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

func (m YearMonth) Next() YearMonth {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

func (m YearMonth) Prev() YearMonth {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Contains проверяет, что момент времени относится к месяцу
func (m YearMonth) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// SameDay сравнивает календарные даты в UTC
func SameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ParseDates разбирает список дат YYYY-MM-DD. Некорректные значения пропускаются.
func ParseDates(values []string) []time.Time {
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}
