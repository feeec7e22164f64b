package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clientdesk/portal/internal/api/handler"
	"github.com/clientdesk/portal/internal/api/middleware"
	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
	"github.com/clientdesk/portal/internal/core/service"
	mongodb "github.com/clientdesk/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/clientdesk/portal/internal/infrastructure/db/redis"
	healthhandler "github.com/clientdesk/portal/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity service and recorder are created by the caller because the
// recorder's workers outlive individual requests.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	activityService ports.ActivityService,
	recorder ports.ActivityRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
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
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	adminRepo := mongodb.NewAdminRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	stats := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(adminRepo, clientRepo, recorder, jwtSecret, tokenTTL, log)
	clientService := service.NewClientService(clientRepo, stats, log)
	messageService := service.NewMessageService(messageRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	messageHandler := handler.NewMessageHandler(messageService)
	activityHandler := handler.NewActivityHandler(activityService)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	clientOnly := middleware.RequireRole(domain.RoleClient)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignupAdmin)
	e.POST("/auth/login", authHandler.LoginAdmin)
	e.POST("/auth/client/signup", authHandler.SignupClient)
	e.POST("/auth/client/login", authHandler.LoginClient)

	// --- Client management (admin only) ---
	clients := e.Group("/clients", authRequired, adminOnly)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/count", clientHandler.Count)
	clients.GET("/active", clientHandler.Active)
	clients.GET("/today-logins", clientHandler.TodayLogins)
	clients.GET("/recent-activities", activityHandler.Recent)
	clients.GET("/activities", activityHandler.ClientActivities)
	clients.PUT("/:id", clientHandler.Update)
	clients.PATCH("/:id/toggle-status", clientHandler.ToggleStatus)

	// --- Messaging ---
	e.GET("/messages", messageHandler.List, authRequired, adminOnly)
	e.POST("/messages", messageHandler.Send, authRequired, clientOnly)

	// --- Activity log (admin only) ---
	e.GET("/activities", activityHandler.List, authRequired, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandler.NewHealthHandler()
	healthDepsHandler := healthhandler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
