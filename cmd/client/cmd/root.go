package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"learninghub/cmd/client/cmd/attendance"
	"learninghub/cmd/client/cmd/auth"
	"learninghub/cmd/client/cmd/report"
	"learninghub/cmd/client/cmd/types"
	"learninghub/cmd/client/cmd/video"
	"learninghub/internal/app/client"
	"learninghub/internal/app/client/config"
	"learninghub/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string

	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "learninghub",
	Short: "Learning Hub - обучающие видео и учет посещаемости",
	Long: `Learning Hub - клиент учебного портала для сотрудников.

Прогресс просмотра сохраняется локально и отправляется на сервер.
При недоступности сервера клиент продолжает работать с локальными данными.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log := newLogger(cfg)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(types.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

// newLogger в консоль пишутся только предупреждения, если не задан --debug.
// С LOG_FILE все записи дополнительно уходят в файл с ротацией.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.LogFile != "" {
		var console io.Writer
		if debug {
			console = os.Stderr
		}
		return logger.NewFile(cfg.Env, logger.FileOptions{Path: cfg.LogFile}, console)
	}
	if debug {
		return logger.New(cfg.Env)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Learning Hub")

	rootCmd.AddCommand(auth.LoginCmd, auth.LogoutCmd, auth.StatusCmd)
	rootCmd.AddCommand(video.CatalogCmd, video.WatchCmd, video.PlayCmd, video.ProgressCmd)
	rootCmd.AddCommand(attendance.AttendanceCmd)
	rootCmd.AddCommand(report.ReportCmd)
}
