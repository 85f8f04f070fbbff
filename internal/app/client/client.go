// Package client клиент портала: сессия сотрудника, кеш прогресса и синхронизация с сервером.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"learninghub/internal/app/client/cache"
	"learninghub/internal/app/client/config"
	"learninghub/internal/app/client/session"
	"learninghub/internal/app/client/store"
	"learninghub/internal/app/client/syncer"
	"learninghub/internal/app/client/tracker"
	"learninghub/internal/app/client/transport"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/catalog"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

var ErrVideoNotFound = errors.New("видео не найдено")

type App struct {
	config  *config.Config
	log     *slog.Logger
	clock   clock.Clock
	store   store.Store
	remote  *transport.Client
	session *session.Manager

	mu     sync.Mutex
	syncer *syncer.Syncer
}

// New создает клиент. Если SQLite недоступен, данные хранятся в памяти.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	var st store.Store
	sqliteStore, err := store.NewSQLite(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		st = store.NewMemory()
	} else {
		st = sqliteStore
	}

	clk := clock.System()
	remote := transport.New(transport.Options{
		BaseURL: cfg.BaseURL(),
		Token:   cfg.APIToken,
		Timeout: cfg.HTTPTimeout,
		Clock:   clk,
	}, log)

	return NewWithDeps(cfg, st, remote, clk, log)
}

// NewWithDeps создает клиент с готовыми зависимостями
func NewWithDeps(cfg *config.Config, st store.Store, remote *transport.Client, clk clock.Clock, log *slog.Logger) (*App, error) {
	mgr, err := session.NewManager(st, user.NewValidator(), log)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки сессии: %w", err)
	}

	return &App{
		config:  cfg,
		log:     log,
		clock:   clk,
		store:   st,
		remote:  remote,
		session: mgr,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) (transport.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.remote.Health(ctx).Unwrap()
}

// Login выполняет вход сотрудника. Сервер недоступен - вход выполняется локально;
// сервер отклонил сотрудника - вход не выполняется.
func (a *App) Login(ctx context.Context, employeeID, name string) (user.SyncState, error) {
	req := user.LoginRequest{EmployeeID: employeeID, Name: name}
	if err := a.session.Validate(req); err != nil {
		return user.SyncState{}, err
	}

	_, err := a.remote.UpsertUser(ctx, user.UpsertRequest{
		UserID:     user.EmployeeUserID(employeeID),
		Name:       name,
		EmployeeID: employeeID,
	}).Unwrap()
	switch {
	case err == nil:
	case transport.IsKind(err, transport.KindRejected) && transport.StatusOf(err) < http.StatusInternalServerError:
		return user.SyncState{}, fmt.Errorf("сервер отклонил вход: %w", err)
	default:
		a.log.Warn("Сервер недоступен, вход выполнен локально", "error", err)
	}

	state, err := a.session.Login(req)
	if err != nil {
		return user.SyncState{}, err
	}

	a.resetSyncer()
	return state, nil
}

// Logout завершает сессию сотрудника
func (a *App) Logout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.resetSyncer()
	return nil
}

// Status текущая личность и зеркало пользователя
func (a *App) Status() (session.Identity, user.SyncState, bool, error) {
	identity, err := a.session.Identity()
	if err != nil {
		return session.Identity{}, user.SyncState{}, false, err
	}
	state, ok := a.session.Current()
	return identity, state, ok, nil
}

// Syncer синхронизация для текущей личности. Создается один раз на сессию.
func (a *App) Syncer() (*syncer.Syncer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.syncer != nil {
		return a.syncer, nil
	}

	identity, err := a.session.Identity()
	if err != nil {
		return nil, err
	}

	progressCache, err := cache.New(a.store, identity.ProgressKey(), a.clock, a.log)
	if err != nil {
		return nil, err
	}

	a.syncer = syncer.New(syncer.SyncContext{
		Identity: identity,
		Cache:    progressCache,
		Mirror:   a.session.Mirror(),
		Store:    a.store,
		Remote:   a.remote,
		Clock:    a.clock,
		Log:      a.log,
	})
	return a.syncer, nil
}

func (a *App) resetSyncer() {
	a.mu.Lock()
	a.syncer = nil
	a.mu.Unlock()
}

// Categories разделы с сервера или встроенный каталог. online = false при запасном варианте.
func (a *App) Categories(ctx context.Context) (categories []catalog.Category, online bool) {
	res := a.remote.Categories(ctx)
	if res.IsOk() && len(res.Value()) > 0 {
		return res.Value(), true
	}
	if !res.IsOk() {
		a.log.Warn("Каталог недоступен, используем встроенный", "error", res.Failure().Error())
	}

	categories, _ = catalog.Default()
	return categories, false
}

// Videos видео раздела с сервера или из встроенного каталога
func (a *App) Videos(ctx context.Context, categoryID string) ([]catalog.Video, bool, error) {
	res := a.remote.Videos(ctx, categoryID)
	if res.IsOk() {
		return res.Value(), true, nil
	}
	a.log.Warn("Видео недоступны, используем встроенный каталог", "category_id", categoryID, "error", res.Failure().Error())

	_, videos := catalog.Default()
	list, ok := videos[categoryID]
	if !ok {
		return nil, false, catalog.ErrCategoryNotFound
	}
	return list, false, nil
}

// FindVideo ищет видео по id во всех разделах
func (a *App) FindVideo(ctx context.Context, videoID string) (catalog.Video, error) {
	categories, _ := a.Categories(ctx)
	for _, c := range categories {
		videos, _, err := a.Videos(ctx, c.ID)
		if err != nil {
			continue
		}
		for _, v := range videos {
			if v.ID == videoID {
				return v, nil
			}
		}
	}
	return catalog.Video{}, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
}

// Watch записывает позицию просмотра видео
func (a *App) Watch(ctx context.Context, videoID string, watchedSeconds float64) (syncer.PushStatus, float64, error) {
	video, err := a.FindVideo(ctx, videoID)
	if err != nil {
		return 0, 0, err
	}

	s, err := a.Syncer()
	if err != nil {
		return 0, 0, err
	}

	status := s.PushProgress(ctx, video.ID, watchedSeconds, video.Duration, video.Category)
	return status, s.Context().Cache.Percentage(video.ID, video.Duration), nil
}

// PlayOptions параметры имитации воспроизведения
type PlayOptions struct {
	From   float64
	Speed  float64
	OnTick func(position, percentage float64, status syncer.PushStatus)
}

// Play воспроизводит видео, отправляя позицию каждые TrackInterval, пока видео
// не закончится или не будет отменен ctx. Возвращает итоговый процент.
func (a *App) Play(ctx context.Context, videoID string, opts PlayOptions) (float64, error) {
	video, err := a.FindVideo(ctx, videoID)
	if err != nil {
		return 0, err
	}

	s, err := a.Syncer()
	if err != nil {
		return 0, err
	}

	if opts.From == 0 {
		if wp, ok := s.Context().Cache.Get(video.ID); ok && !wp.Completed {
			opts.From = wp.WatchedSeconds
		}
	}

	player := tracker.NewSimulatedPlayer(a.clock, opts.From, video.Duration, opts.Speed)
	push := func(ctx context.Context, position float64) {
		status := s.PushProgress(ctx, video.ID, position, video.Duration, video.Category)
		if opts.OnTick != nil {
			opts.OnTick(position, s.Context().Cache.Percentage(video.ID, video.Duration), status)
		}
	}

	t := tracker.New(a.config.TrackInterval, player, push, a.log)
	player.Play()
	t.Start(ctx)

	select {
	case <-ctx.Done():
	case <-t.Done():
	}
	t.Stop()
	player.Pause()

	// последняя позиция отправляется даже после отмены
	push(context.WithoutCancel(ctx), player.Position())

	return s.Context().Cache.Percentage(video.ID, video.Duration), nil
}

// ToggleAttendance отмечает присутствие за сегодня
func (a *App) ToggleAttendance(ctx context.Context, present bool) (user.SyncState, error) {
	s, err := a.Syncer()
	if err != nil {
		return user.SyncState{}, err
	}
	return s.ToggleAttendance(ctx, present)
}

// Calendar календарь посещаемости за месяц
func (a *App) Calendar(ctx context.Context, month attendance.YearMonth) (syncer.AttendanceView, error) {
	s, err := a.Syncer()
	if err != nil {
		return syncer.AttendanceView{}, err
	}
	if s.Context().Identity.Anonymous() {
		return syncer.AttendanceView{}, syncer.ErrNotLoggedIn
	}

	forced := attendance.ParseDates(a.config.ForcedAttendanceDates)
	return s.Calendar(ctx, month, forced), nil
}

// CurrentMonth месяц по часам клиента
func (a *App) CurrentMonth() attendance.YearMonth {
	return attendance.MonthOf(a.clock.Now())
}

// Progress прогресс пользователя: с сервера или из локального кеша
func (a *App) Progress(ctx context.Context) ([]progress.WatchProgress, error) {
	s, err := a.Syncer()
	if err != nil {
		return nil, err
	}
	return s.PullProgress(ctx), nil
}

// AverageProgress средний процент просмотра по всем видео каталога
func (a *App) AverageProgress(ctx context.Context) (float64, error) {
	s, err := a.Syncer()
	if err != nil {
		return 0, err
	}

	durations := make(map[string]float64)
	categories, _ := a.Categories(ctx)
	for _, c := range categories {
		videos, _, err := a.Videos(ctx, c.ID)
		if err != nil {
			continue
		}
		for _, v := range videos {
			durations[v.ID] = v.Duration
		}
	}

	return s.Context().Cache.AveragePercentage(durations), nil
}

// Report сводный отчет администратора
func (a *App) Report(ctx context.Context) (progress.Report, error) {
	return a.remote.Report(ctx).Unwrap()
}
