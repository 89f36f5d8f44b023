package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrsuite/personnel-system/internal/api/handler"
	"github.com/hrsuite/personnel-system/internal/api/middleware"
	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
	"github.com/hrsuite/personnel-system/internal/core/service"
	"github.com/hrsuite/personnel-system/internal/infrastructure/config"
	mongostore "github.com/hrsuite/personnel-system/internal/infrastructure/db/mongo"
	redisstore "github.com/hrsuite/personnel-system/internal/infrastructure/db/redis"
	"github.com/hrsuite/personnel-system/internal/infrastructure/hash"
	"github.com/hrsuite/personnel-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	tokens ports.TokenService,
	audit handler.AuditSink,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("personnel"))

	// --- Dependencies ---
	users := mongostore.NewUserStore(db)
	roles := mongostore.NewRoleStore(db)
	persons := mongostore.NewPersonStore(db)

	directory := service.NewDirectory(users, roles, log)
	perms := service.NewPermissions(persons, cfg.ReadRoles, cfg.WriteRoles, log)
	throttle := redisstore.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptTTL)
	authService := service.NewAuthService(directory, users, hash.NewBcryptHasher(), tokens, throttle, log)
	roleService := service.NewRoleService(users, roles, log)

	authHandler := handler.NewAuthHandler(authService, audit)
	roleHandler := handler.NewUserRoleHandler(roleService, audit)
	resourceHandler := handler.NewResourceHandler(persons, directory)

	// Every request gets its principal resolved here; the guards below make
	// the allow/deny calls.
	e.Use(middleware.AuthContext(tokens, directory, persons, log))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me, middleware.RequireAuthenticated())

	// --- Guarded resource reads ---
	e.GET("/persons/:id", resourceHandler.GetPerson,
		middleware.RequireResourceAccess(perms, domain.ResourcePerson, "id"))
	e.GET("/users/:id", resourceHandler.GetUser,
		middleware.RequireResourceAccess(perms, domain.ResourceUser, "id"))

	// --- Role management (privileged writers only) ---
	rg := e.Group("/users/:id/roles", middleware.RequireWrite(perms))
	rg.POST("", roleHandler.Assign)
	rg.PUT("", roleHandler.Replace)
	rg.DELETE("/:role_id", roleHandler.Remove)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
