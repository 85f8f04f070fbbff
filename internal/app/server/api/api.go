// GET  /api/v1/health                                   # состояние сервера (публичный)
// GET  /api/v1/users                                    # список пользователей
// POST /api/v1/users                                    # создать или обновить пользователя
// POST /api/v1/progress                                 # сохранить прогресс просмотра
// GET  /api/v1/progress/{userId}                        # прогресс пользователя
// GET  /api/v1/admin/progress                           # сводный отчет
// POST /api/v1/users/{employeeId}/attendance            # отметить присутствие
// GET  /api/v1/users/{employeeId}/attendance/logs       # журнал присутствия за месяц
// GET  /api/v1/categories                               # разделы обучения
// GET  /api/v1/videos/{categoryId}                      # видео раздела
//
// Все ответы запрещают кеширование.

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	attendanceAPI "learninghub/internal/app/server/api/http/attendance"
	catalogAPI "learninghub/internal/app/server/api/http/catalog"
	healthAPI "learninghub/internal/app/server/api/http/health"
	"learninghub/internal/app/server/api/http/middleware"
	"learninghub/internal/app/server/api/http/middleware/auth"
	"learninghub/internal/app/server/api/http/middleware/logger"
	"learninghub/internal/app/server/api/http/middleware/nocache"
	progressAPI "learninghub/internal/app/server/api/http/progress"
	userAPI "learninghub/internal/app/server/api/http/user"
	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/catalog"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
	"learninghub/internal/infrastructure/storage"
	"learninghub/internal/utils/clock"
)

// Deps зависимости API
type Deps struct {
	Store       storage.Store
	StorageName string
	Token       string
	// Roster список допуска. nil отключает проверку.
	Roster user.Roster
	Clock  clock.Clock
}

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Progress   *progressAPI.Handler
	Attendance *attendanceAPI.Handler
	Catalog    *catalogAPI.Handler
}

// Services доменные сервисы поверх общего KV хранилища
type Services struct {
	User       *user.Service
	Progress   *progress.Service
	Attendance *attendance.Service
	Catalog    *catalog.Service
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(deps Deps, log *slog.Logger) *chi.Mux {
	return NewWithServices(deps, NewServices(deps, log), log)
}

// NewWithServices то же, что New, но с заранее собранными сервисами
func NewWithServices(deps Deps, services *Services, log *slog.Logger) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()

	config := huma.DefaultConfig("Learning Hub API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(deps, services, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Progress.SetupRoutes(API)
	h.Attendance.SetupRoutes(API)
	h.Catalog.SetupRoutes(API)

	return mux
}

// NewServices собирает сервисы
func NewServices(deps Deps, log *slog.Logger) *Services {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System()
	}

	userRepo := storage.NewUserRepository(deps.Store, log)
	userService := user.NewService(userRepo, user.NewValidator(), deps.Roster, clk, log)

	progressRepo := storage.NewProgressRepository(deps.Store, log)
	progressService := progress.NewService(progressRepo, userService, clk, log)

	attendanceRepo := storage.NewAttendanceRepository(deps.Store, log)
	attendanceService := attendance.NewService(attendanceRepo, userService, clk, log)

	catalogRepo := storage.NewCatalogRepository(deps.Store, log)
	catalogService := catalog.NewService(catalogRepo, log)

	return &Services{
		User:       userService,
		Progress:   progressService,
		Attendance: attendanceService,
		Catalog:    catalogService,
	}
}

func handlers(deps Deps, s *Services, log *slog.Logger) *Handlers {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System()
	}

	authMW := auth.New(deps.Token, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(nocache.Middleware(), loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(deps.StorageName, clk, log, middlewares.GetAllAndClear())

	middlewares.Add(nocache.Middleware(), loggerMW.Middleware(), authMW.Middleware())
	userHandler := userAPI.NewHandler(s.User, log, middlewares.GetAllAndClear())

	middlewares.Add(nocache.Middleware(), loggerMW.Middleware(), authMW.Middleware())
	progressHandler := progressAPI.NewHandler(s.Progress, log, middlewares.GetAllAndClear())

	middlewares.Add(nocache.Middleware(), loggerMW.Middleware(), authMW.Middleware())
	attendanceHandler := attendanceAPI.NewHandler(s.Attendance, clk, log, middlewares.GetAllAndClear())

	middlewares.Add(nocache.Middleware(), loggerMW.Middleware(), authMW.Middleware())
	catalogHandler := catalogAPI.NewHandler(s.Catalog, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Progress:   progressHandler,
		Attendance: attendanceHandler,
		Catalog:    catalogHandler,
	}
}
