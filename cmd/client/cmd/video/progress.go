package video

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var ProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Мой прогресс просмотра",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Progress(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ВИДЕО\tПРОСМОТРЕНО\tЗАВЕРШЕНО\tПОСЛЕДНИЙ ПРОСМОТР")
		for _, wp := range list {
			done := ""
			if wp.Completed {
				done = "✓"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", wp.ContentID, formatDuration(wp.WatchedSeconds), done,
				wp.LastWatchedAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
