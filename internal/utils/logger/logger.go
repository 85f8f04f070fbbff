package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"

	"learninghub/internal/config"
)

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

// FileOptions параметры ротации файла логов
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewFile создает JSON логгер, пишущий в файл с ротацией.
// Если console != nil, записи дублируются туда же.
func NewFile(env string, opts FileOptions, console io.Writer) *slog.Logger {
	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    valueOr(opts.MaxSizeMB, 10),
		MaxBackups: valueOr(opts.MaxBackups, 3),
		MaxAge:     valueOr(opts.MaxAgeDays, 14),
		Compress:   true,
	}

	var w io.Writer = rotator
	if console != nil {
		w = io.MultiWriter(rotator, console)
	}

	level := slog.LevelDebug
	if env == config.EnvProd {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func valueOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
