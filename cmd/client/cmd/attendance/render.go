package attendance

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"learninghub/internal/app/client/syncer"
)

var weekdays = []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// Render печатает календарь месяца. Дни с отметкой помечены *, сегодня в скобках.
func Render(w io.Writer, view syncer.AttendanceView, colored bool) {
	present := color.New(color.FgGreen, color.Bold)
	today := color.New(color.Underline)
	if !colored {
		present.DisableColor()
		today.DisableColor()
	} else {
		present.EnableColor()
		today.EnableColor()
	}

	fmt.Fprintf(w, "%s\n", view.Grid.Month)
	for _, d := range weekdays {
		fmt.Fprintf(w, "%5s", d)
	}
	fmt.Fprintln(w)

	for _, week := range view.Grid.Weeks() {
		for _, cell := range week {
			if cell == nil {
				fmt.Fprintf(w, "%5s", "")
				continue
			}

			mark := " "
			if cell.Present {
				mark = "*"
			}
			text := fmt.Sprintf("%2d%s", cell.Day, mark)
			if cell.Today {
				text = "[" + text + "]"
			} else {
				text = " " + text + " "
			}

			switch {
			case cell.Present:
				text = present.Sprint(text)
			case cell.Today:
				text = today.Sprint(text)
			}
			fmt.Fprint(w, text)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nДней с отметкой: %d из %d, посещаемость %.1f%%\n",
		view.Grid.PresentCount(), len(view.Grid.Days), view.Rate)
}
