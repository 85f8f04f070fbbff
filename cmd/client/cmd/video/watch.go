package video

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
)

var WatchCmd = &cobra.Command{
	Use:   "watch <videoId> <seconds>",
	Short: "Сохранить позицию просмотра",
	Long: `Сохраняет позицию просмотра локально и отправляет процент на сервер.
Видео считается просмотренным, если просмотрено не менее 90%.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		seconds, err := strconv.ParseFloat(args[1], 64)
		if err != nil || seconds < 0 {
			return fmt.Errorf("некорректная позиция: %q", args[1])
		}

		status, pct, err := app.Watch(cmd.Context(), args[0], seconds)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f%% (%s)\n", args[0], pct, status)
		return nil
	},
}
