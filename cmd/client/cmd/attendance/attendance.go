package attendance

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"learninghub/cmd/client/cmd/types"
	"learninghub/internal/app/client/syncer"
	domain "learninghub/internal/domain/attendance"
)

var AttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Посещаемость",
}

var (
	absent    bool
	monthFlag string
	prev      bool
	next      bool
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Отметить присутствие за сегодня",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		state, err := app.ToggleAttendance(cmd.Context(), !absent)
		if err != nil {
			if errors.Is(err, syncer.ErrMutationPending) {
				return fmt.Errorf("предыдущая отметка еще не завершена")
			}
			return err
		}

		if state.Attendance {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: присутствие отмечено\n", state.Name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: отметка снята\n", state.Name)
		}
		return nil
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Календарь посещаемости за месяц",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		month := app.CurrentMonth()
		if monthFlag != "" {
			month, err = domain.ParseYearMonth(monthFlag)
			if err != nil {
				return err
			}
		}
		switch {
		case prev:
			month = month.Prev()
		case next:
			month = month.Next()
		}

		view, err := app.Calendar(cmd.Context(), month)
		if err != nil {
			if errors.Is(err, syncer.ErrNotLoggedIn) {
				return fmt.Errorf("календарь доступен после входа: learninghub login")
			}
			return err
		}

		Render(cmd.OutOrStdout(), view, colorEnabled())
		return nil
	},
}

func colorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	toggleCmd.Flags().BoolVar(&absent, "absent", false, "снять отметку")

	calendarCmd.Flags().StringVarP(&monthFlag, "month", "m", "", "месяц в формате YYYY-MM")
	calendarCmd.Flags().BoolVar(&prev, "prev", false, "предыдущий месяц")
	calendarCmd.Flags().BoolVar(&next, "next", false, "следующий месяц")
	calendarCmd.MarkFlagsMutuallyExclusive("prev", "next")

	AttendanceCmd.AddCommand(toggleCmd, calendarCmd)
}
