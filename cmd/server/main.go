package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"learninghub/internal/app/server/allowlist"
	"learninghub/internal/app/server/api"
	"learninghub/internal/app/server/config"
	"learninghub/internal/infrastructure/migration"
	"learninghub/internal/infrastructure/storage"
	"learninghub/internal/infrastructure/storage/memory"
	"learninghub/internal/infrastructure/storage/postgres"
	"learninghub/internal/utils/clock"
	"learninghub/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	store, storageName, err := openStore(ctx, conf, log)
	if err != nil {
		return err
	}
	defer store.Close()

	deps := api.Deps{
		Store:       store,
		StorageName: storageName,
		Token:       conf.Auth.Token,
		Clock:       clock.System(),
	}

	if conf.Allowlist.Path != "" {
		list, err := allowlist.Load(conf.Allowlist.Path, log)
		if err != nil {
			return err
		}
		deps.Roster = list
		log.Info("allowlist loaded", slog.Int("employees", list.Len()))

		if err := list.Watch(ctx); err != nil {
			log.Warn("allowlist hot reload disabled", slog.String("error", err.Error()))
		}
	} else {
		log.Warn("ALLOWLIST_PATH is empty, every employee is allowed")
	}

	services := api.NewServices(deps, log)
	if err := services.Catalog.Seed(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: api.NewWithServices(deps, services, log),
	}

	g.Go(func() error {
		log.Info("starting server", slog.String("address", srv.Addr), slog.String("storage", storageName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, conf *config.Config, log *slog.Logger) (storage.Store, string, error) {
	if !conf.UsesDatabase() {
		log.Warn("DATABASE_URI is empty, data is kept in memory")
		return memory.New(), "memory", nil
	}

	pg, err := postgres.New(ctx, conf, migration.DefaultEngine, log)
	if err != nil {
		return nil, "", err
	}
	return pg, "postgres", nil
}
