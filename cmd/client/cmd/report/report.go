package report

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Сводный отчет по сотрудникам (требуется сервер)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		report, err := app.Report(cmd.Context())
		if err != nil {
			return fmt.Errorf("отчет недоступен: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(report.Users) == 0 {
			fmt.Fprintln(out, "Нет данных о просмотрах")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ТАБЕЛЬНЫЙ №\tИМЯ\tВИДЕО\tЗАВЕРШЕНО\tСРЕДНИЙ %\tПОСЛЕДНЯЯ АКТИВНОСТЬ")
		for _, u := range report.Users {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%s\n",
				u.EmployeeID, u.UserName, u.TotalVideos, u.CompletedVideos, u.AvgProgress,
				u.LastActivity.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
