package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Thanuja200/Resolve-now/internal/api/handler"
	"github.com/Thanuja200/Resolve-now/internal/api/middleware"
	"github.com/Thanuja200/Resolve-now/internal/core/domain"
	"github.com/Thanuja200/Resolve-now/internal/core/service"
	"github.com/Thanuja200/Resolve-now/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs wired in.
type Dependencies struct {
	AuthService      *service.AuthService
	ComplaintService *service.ComplaintService
	Tokens           *service.TokenManager
	Mongo            *mongo.Database
	Redis            *redis.Client
	Logger           zerolog.Logger
	Development      bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.Development)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resolvenow"))
	e.Use(echomiddleware.CORS())

	authHandler := handler.NewAuthHandler(deps.AuthService)
	complaintHandler := handler.NewComplaintHandler(deps.ComplaintService)
	authRequired := middleware.Auth(deps.Tokens)

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Complaint routes (bearer token required) ---
	complaints := e.Group("/api/complaints", authRequired)
	complaints.POST("", complaintHandler.Create)
	complaints.GET("/my", complaintHandler.ListMine)
	// List-all carries an extra role gate; the service enforces the same
	// policy again so a misrouted call still fails closed.
	complaints.GET("", complaintHandler.ListAll, middleware.RequireRole(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
