package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/starcast/casting-api/docs"
	"github.com/starcast/casting-api/internal/api/handler"
	"github.com/starcast/casting-api/internal/api/middleware"
	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
	"github.com/starcast/casting-api/internal/core/service"
	"github.com/starcast/casting-api/internal/infrastructure/config"
	mongodb "github.com/starcast/casting-api/internal/infrastructure/db/mongo"
	redisdb "github.com/starcast/casting-api/internal/infrastructure/db/redis"
	"github.com/starcast/casting-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("starcast"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	castingRepo := mongodb.NewCastingRepository(db)
	listingCache := redisdb.NewListingCache(rdb, cfg.Redis.ListingTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, audit, log)
	castingService := service.NewCastingService(castingRepo, listingCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	castingHandler := handler.NewCastingHandler(castingService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/password", userHandler.ChangePassword)
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Casting routes ---
	e.GET("/api/casting", castingHandler.List)
	casting := e.Group("/api/casting", authMiddleware)
	casting.POST("", castingHandler.Create, middleware.RBAC(domain.RoleCasting, domain.RoleAdmin))
	casting.GET("/my-registrations", castingHandler.MyRegistrations, middleware.RBAC(domain.RoleUser))
	casting.PUT("/:id", castingHandler.Update, middleware.RBAC(domain.RoleCasting, domain.RoleAdmin))
	casting.DELETE("/:id", castingHandler.Delete, middleware.RBAC(domain.RoleCasting, domain.RoleAdmin))
	casting.POST("/:id/register", castingHandler.Register, middleware.RBAC(domain.RoleUser))
	casting.GET("/:id/registrations", castingHandler.Registrations, middleware.RBAC(domain.RoleCasting, domain.RoleAdmin))
	e.GET("/api/casting/:id", castingHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
