package syncer

import (
	"context"
	"time"

	"learninghub/internal/domain/attendance"
)

// AttendanceView календарь месяца с процентом посещаемости
type AttendanceView struct {
	Grid attendance.MonthGrid
	Rate float64
}

// Calendar строит календарь: отметки сервера, принудительные даты и флаг
// присутствия зеркала, если месяц текущий.
func (s *Syncer) Calendar(ctx context.Context, month attendance.YearMonth, forced []time.Time) AttendanceView {
	today := s.sc.Clock.Now().UTC()

	timestamps := s.PullAttendanceLog(ctx, month)
	timestamps = append(timestamps, forced...)

	if state, ok := s.sc.Mirror.State(); ok && state.Attendance && month.Contains(today) {
		timestamps = append(timestamps, today)
	}

	return AttendanceView{
		Grid: attendance.BuildMonthGrid(month, timestamps, today),
		Rate: attendance.ComputeAttendanceRate(month, timestamps),
	}
}
