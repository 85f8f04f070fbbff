package attendance

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learninghub/internal/app/client/syncer"
	domain "learninghub/internal/domain/attendance"
)

func TestRender(t *testing.T) {
	month := domain.YearMonth{Year: 2024, Month: time.February}
	stamps := []time.Time{
		time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC),
	}
	today := time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)

	view := syncer.AttendanceView{
		Grid: domain.BuildMonthGrid(month, stamps, today),
		Rate: domain.ComputeAttendanceRate(month, stamps),
	}

	var buf bytes.Buffer
	Render(&buf, view, false)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "2024-02", lines[0])

	// 1 февраля 2024 - четверг, четыре пустые ячейки перед ним
	assert.Equal(t, strings.Repeat(" ", 20)+"  1* ", lines[2][:25])

	assert.Contains(t, out, " 15* ")
	assert.Contains(t, out, "[20 ]")
	assert.Contains(t, out, "Дней с отметкой: 2 из 29, посещаемость 6.9%")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_Colored(t *testing.T) {
	month := domain.YearMonth{Year: 2024, Month: time.March}
	stamps := []time.Time{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}

	view := syncer.AttendanceView{
		Grid: domain.BuildMonthGrid(month, stamps, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)),
		Rate: domain.ComputeAttendanceRate(month, stamps),
	}

	var buf bytes.Buffer
	Render(&buf, view, true)

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "посещаемость 3.2%")
}
