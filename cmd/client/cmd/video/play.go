package video

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"learninghub/cmd/client/cmd/types"
	"learninghub/internal/app/client"
	"learninghub/internal/app/client/syncer"
)

var (
	from  float64
	speed float64
)

var PlayCmd = &cobra.Command{
	Use:   "play <videoId>",
	Short: "Воспроизвести видео с отправкой прогресса",
	Long: `Имитирует воспроизведение: позиция отправляется на сервер с интервалом TRACK_INTERVAL.
Ctrl+C останавливает воспроизведение, последняя позиция сохраняется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pct, err := app.Play(ctx, args[0], client.PlayOptions{
			From:  from,
			Speed: speed,
			OnTick: func(position, percentage float64, status syncer.PushStatus) {
				fmt.Fprintf(out, "\r%s  %.1f%%  [%s]   ", formatDuration(position), percentage, status)
			},
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nИтог: %.1f%%\n", pct)
		return nil
	},
}

func init() {
	PlayCmd.Flags().Float64Var(&from, "from", 0, "начальная позиция в секундах (по умолчанию продолжить)")
	PlayCmd.Flags().Float64Var(&speed, "speed", 1, "скорость воспроизведения")
}
