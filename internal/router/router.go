// Package router builds the echo instance: the global middleware chain,
// the error translator and every route of the admin API.
package router

import (
	"log/slog"

	"restaurant-admin/internal/config"
	"restaurant-admin/internal/handlers"
	"restaurant-admin/internal/middleware"
	"restaurant-admin/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultBodyLimit = "12M"

// Dependencies are the composed handlers and shared components the routes need
type Dependencies struct {
	Auth         *handlers.AuthHandler
	Restaurant   *handlers.RestaurantHandler
	Instruction  *handlers.InstructionHandler
	CustomerInfo *handlers.CustomerInfoHandler
	Health       *handlers.HealthCheckHandler

	TokenService services.TokenServiceInterface
	LoginLimiter *middleware.RateLimiter
	Gatherer     prometheus.Gatherer
	Logger       *slog.Logger
}

// New returns an echo instance with middleware and routes registered
func New(cfg *config.Config, deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.IPExtractor = middleware.IPExtractor(cfg.Server.TrustedProxies)

	bodyLimit := cfg.Server.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	e.Use(
		middleware.RequestID(),
		middleware.SecurityHeaders(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  cfg.Server.CORSAllowOrigins,
			AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
			ExposeHeaders: []string{middleware.TraceIDHeader},
		}),
		middleware.RequestLogger(deps.Logger),
		middleware.PanicRecovery(),
		echomw.BodyLimit(bodyLimit),
	)

	registerSystemRoutes(e, deps)
	registerAPIRoutes(e, cfg, deps)

	return e
}

func registerSystemRoutes(e *echo.Echo, deps *Dependencies) {
	e.GET("/", deps.Health.Root)
	e.GET("/health", deps.Health.HealthCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerAPIRoutes(e *echo.Echo, cfg *config.Config, deps *Dependencies) {
	api := e.Group("/api")

	var login []echo.MiddlewareFunc
	if deps.LoginLimiter != nil {
		login = append(login, deps.LoginLimiter.Middleware())
	}
	api.POST("/ValidateLogin", deps.Auth.ValidateLogin, login...)

	var protected []echo.MiddlewareFunc
	if cfg.Security.RequireAuth {
		protected = append(protected, middleware.RequireAuth(deps.TokenService))
	}

	api.POST("/Restaurant", deps.Restaurant.CreateRestaurant, protected...)
	api.GET("/Restaurant", deps.Restaurant.SearchRestaurants, protected...)
	api.POST("/Instruction", deps.Instruction.CreateInstruction, protected...)
	api.GET("/Instruction", deps.Instruction.LoadInstructions, protected...)
	api.POST("/CustomerInfo", deps.CustomerInfo.CreateCustomerInfo, protected...)
}
