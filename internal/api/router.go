package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/crewdesk/crewdesk-api/docs"
	"github.com/crewdesk/crewdesk-api/internal/api/handler"
	"github.com/crewdesk/crewdesk-api/internal/api/middleware"
	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
	"github.com/crewdesk/crewdesk-api/internal/core/service"
	mongodb "github.com/crewdesk/crewdesk-api/internal/infrastructure/db/mongo"
)

// RouterConfig carries the shared infrastructure the router wires handlers to.
// TaskCache, Feed and Tokens are built in main because the realtime bridge
// shares them.
type RouterConfig struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	TaskCache ports.TaskCache
	Feed      ports.ChangePublisher
	Tokens    ports.TokenStore
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crewdesk"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(cfg.Mongo)
	profileRepo := mongodb.NewProfileRepository(cfg.Mongo)
	taskRepo := mongodb.NewTaskRepository(cfg.Mongo)
	projectRepo := mongodb.NewProjectRepository(cfg.Mongo)

	authService := service.NewAuthService(userRepo, profileRepo, cfg.Tokens, cfg.JWTSecret, cfg.TokenTTL, cfg.Logger)
	profileService := service.NewProfileService(profileRepo, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, profileRepo, cfg.TaskCache, cfg.Feed, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	taskHandler := handler.NewTaskHandler(taskService)
	projectHandler := handler.NewProjectHandler(projectService)

	authn := middleware.Auth(cfg.JWTSecret, cfg.Tokens)
	withRole := middleware.ResolveRole(profileService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.SignIn)
	e.POST("/auth/logout", authHandler.SignOut, authn)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authn, withRole)

	// Profile surface needs identity only; a caller with an unresolvable
	// role can still read their own profile.
	v1.GET("/profiles/me", profileHandler.Me)
	v1.PATCH("/profiles/me", profileHandler.UpdateMe)
	v1.GET("/profiles", profileHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee))

	v1.GET("/tasks", taskHandler.List, middleware.RBAC())
	v1.POST("/tasks", taskHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee))
	v1.PATCH("/tasks/:id", taskHandler.Update, middleware.RBAC())

	v1.GET("/projects", projectHandler.List, middleware.RBAC())
	v1.POST("/projects", projectHandler.Create, middleware.RBAC())
	v1.PUT("/projects/:id", projectHandler.Update, middleware.RBAC())
	v1.DELETE("/projects/:id", projectHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
