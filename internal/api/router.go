package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/agencypulse/kpi-dashboard/internal/api/handler"
	"github.com/agencypulse/kpi-dashboard/internal/api/middleware"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/http/handlers"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Auth       ports.AuthService
	Clients    ports.ClientService
	Team       ports.TeamService
	Social     ports.KPIService[domain.SocialMediaKPI]
	SEO        ports.KPIService[domain.WebsiteSEOKPI]
	Ads        ports.KPIService[domain.AdsKPI]
	Email      ports.KPIService[domain.EmailKPI]
	Responses  ports.KPIService[domain.ClientResponse]
	TeamKPIs   ports.KPIService[domain.TeamKPI]
	Activities ports.ActivityService
}

// RouterConfig carries the transport-level settings.
type RouterConfig struct {
	JWTSecret   string
	CORSOrigins []string
	Revoker     ports.TokenRevoker
	// Readiness backs GET /health/ready. Nil disables the route.
	Readiness *handlers.HealthDependenciesHandler
	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig, svc Services) *echo.Echo {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "kpi_dashboard",
		Registerer: cfg.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	if cfg.Readiness != nil {
		e.GET("/health/ready", cfg.Readiness.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	requireAuth := middleware.Auth(cfg.JWTSecret, cfg.Revoker)
	canDelete := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)
	api.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Clients ---
	clientHandler := handler.NewClientHandler(svc.Clients)
	clients := api.Group("/clients", requireAuth)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.GET("/:id/overview", clientHandler.Overview)
	clients.POST("", clientHandler.Create)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete, canDelete)

	// --- Team ---
	teamHandler := handler.NewTeamHandler(svc.Team)
	team := api.Group("/team", requireAuth)
	team.GET("", teamHandler.List)
	team.GET("/:id", teamHandler.Get)
	team.POST("", teamHandler.Create)
	team.PUT("/:id", teamHandler.Update)
	team.DELETE("/:id", teamHandler.Delete, canDelete)

	// --- Channel KPIs ---
	handler.NewSocialMediaHandler(svc.Social).Register(api.Group("/social-media", requireAuth))
	handler.NewWebsiteSEOHandler(svc.SEO).Register(api.Group("/website-seo", requireAuth))
	handler.NewAdsHandler(svc.Ads).Register(api.Group("/ads", requireAuth))
	handler.NewEmailHandler(svc.Email).Register(api.Group("/email", requireAuth))
	handler.NewClientResponseHandler(svc.Responses).Register(api.Group("/responses", requireAuth))
	handler.NewTeamKPIHandler(svc.TeamKPIs).Register(api.Group("/team-kpis", requireAuth))

	// --- Activity feed ---
	activityHandler := handler.NewActivityHandler(svc.Activities)
	api.GET("/activities", activityHandler.List, requireAuth)

	return e
}
