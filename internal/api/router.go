package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/taskden/todo-api/internal/api/handler"
	"github.com/taskden/todo-api/internal/api/middleware"
	"github.com/taskden/todo-api/internal/core/ports"
	"github.com/taskden/todo-api/internal/core/service"
	"github.com/taskden/todo-api/internal/infrastructure/config"
	postgresdb "github.com/taskden/todo-api/internal/infrastructure/db/postgres"
	redisdb "github.com/taskden/todo-api/internal/infrastructure/db/redis"
	"github.com/taskden/todo-api/internal/infrastructure/http/handlers"
)

// Deps aggregates the external resources the router wires together. The
// activity dispatcher is owned by main so its workers share the process
// lifecycle, not the router's.
type Deps struct {
	DB              *gorm.DB
	RDB             *redis.Client
	Cfg             *config.Config
	Log             zerolog.Logger
	Activity        ports.ActivityRecorder
	ActivityService ports.ActivityService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	authRepo := postgresdb.NewAuthRepository(d.DB)
	authService := service.NewAuthService(authRepo, d.Log)
	sessions := redisdb.NewSessionStore(d.RDB, d.Cfg.Session.TTL)

	listService := service.NewListService(postgresdb.NewListRepository(d.DB), d.Log)
	itemService := service.NewItemService(postgresdb.NewItemRepository(d.DB), d.Log)

	authHandler := handler.NewAuthHandler(authService, sessions, d.Log, d.Cfg.Session.TTL, d.Cfg.Session.CookieSecure)
	listHandler := handler.NewListHandler(listService, d.Activity)
	itemHandler := handler.NewItemHandler(itemService, d.Activity)
	activityHandler := handler.NewActivityHandler(d.ActivityService)

	// --- Auth routes (no session required) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/get-session", authHandler.GetSession)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.DB, d.RDB)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Session-gated routes ---
	authed := e.Group("", middleware.Session(sessions))

	authed.GET("/get-list", listHandler.ListAll)
	authed.GET("/get-list/:id", listHandler.Get)
	authed.POST("/add-list", listHandler.Create)
	authed.PUT("/update-list/:id", listHandler.Update)
	authed.DELETE("/delete-list/:id", listHandler.Delete)

	authed.GET("/get-items", itemHandler.ListAll)
	authed.GET("/get-items/:listId", itemHandler.ListByList)
	authed.POST("/lists/:listId/items", itemHandler.Create)
	authed.PUT("/lists/:listId/items/:itemId", itemHandler.Update)
	authed.DELETE("/lists/:listId/items/:itemId", itemHandler.Delete)

	authed.GET("/get-activity", activityHandler.Recent)

	return e
}
