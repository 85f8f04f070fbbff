package attendance

import (
	"math"
	"time"
)

// DayCell ячейка календаря
type DayCell struct {
	Day     int       `json:"day"`
	Date    time.Time `json:"date"`
	Present bool      `json:"present"`
	Today   bool      `json:"today"`
}

// MonthGrid календарь месяца. Padding - число пустых ячеек перед первым днем (воскресенье = 0).
type MonthGrid struct {
	Month   YearMonth `json:"month"`
	Padding int       `json:"padding"`
	Days    []DayCell `json:"days"`
}

// BuildMonthGrid строит календарь месяца по списку отметок.
// Отметки вне месяца игнорируются.
func BuildMonthGrid(month YearMonth, timestamps []time.Time, today time.Time) MonthGrid {
	present := PresentDays(month, timestamps)
	first := month.First()

	grid := MonthGrid{
		Month:   month,
		Padding: int(first.Weekday()),
		Days:    make([]DayCell, month.Days()),
	}

	for i := range grid.Days {
		date := first.AddDate(0, 0, i)
		grid.Days[i] = DayCell{
			Day:     i + 1,
			Date:    date,
			Present: present[i+1],
			Today:   SameDay(date, today),
		}
	}

	return grid
}

// Weeks раскладывает календарь по неделям. nil означает пустую ячейку.
func (g MonthGrid) Weeks() [][]*DayCell {
	total := g.Padding + len(g.Days)
	rows := (total + 6) / 7

	weeks := make([][]*DayCell, rows)
	for r := range weeks {
		weeks[r] = make([]*DayCell, 7)
	}
	for i := range g.Days {
		pos := g.Padding + i
		weeks[pos/7][pos%7] = &g.Days[i]
	}

	return weeks
}

// PresentCount количество дней с отметкой
func (g MonthGrid) PresentCount() int {
	n := 0
	for _, d := range g.Days {
		if d.Present {
			n++
		}
	}
	return n
}

// ComputeAttendanceRate доля дней месяца с отметкой, в процентах с точностью до десятых
func ComputeAttendanceRate(month YearMonth, timestamps []time.Time) float64 {
	days := month.Days()
	if days == 0 {
		return 0
	}
	present := PresentDays(month, timestamps)
	return math.Round(float64(len(present))/float64(days)*1000) / 10
}

// PresentDays множество дней месяца (1..N), на которые приходится хотя бы одна отметка
func PresentDays(month YearMonth, timestamps []time.Time) map[int]bool {
	out := make(map[int]bool)
	for _, ts := range timestamps {
		if ts.IsZero() || !month.Contains(ts) {
			continue
		}
		out[ts.UTC().Day()] = true
	}
	return out
}
