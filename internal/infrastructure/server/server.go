package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/missiontracker/core/docs"
	"github.com/missiontracker/core/internal/adapters/credentials"
	httpHandlers "github.com/missiontracker/core/internal/adapters/http"
	"github.com/missiontracker/core/internal/adapters/repository"
	"github.com/missiontracker/core/internal/application/services"
	"github.com/missiontracker/core/internal/infrastructure/config"
	"github.com/missiontracker/core/internal/infrastructure/database"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   *logger.Logger
	db       *database.DB
	registry *prometheus.Registry
	clock    ports.Clock
}

// Option customizes a Server
type Option func(*Server)

// WithClock replaces the wall clock used for timestamps and the today view.
func WithClock(clock ports.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, db *database.DB, appLogger *logger.Logger, opts ...Option) (*Server, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	e := echo.New()

	// Set custom validator
	v := validator.New()
	v.RegisterTagNameFunc(httpHandlers.JSONTagName)
	e.Validator = &CustomValidator{validator: v}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger, cfg.App.IsProduction())

	server := &Server{
		echo:     e,
		config:   cfg,
		logger:   appLogger,
		db:       db,
		registry: prometheus.NewRegistry(),
		clock:    services.SystemClock{},
	}
	for _, opt := range opts {
		opt(server)
	}

	// Initialize repositories
	missionRepo := repository.NewMissionRepository(db)
	dailyRepo := repository.NewDailyMissionRepository(db)
	accounts := credentials.NewStaticStore(cfg.Auth.Accounts)

	// Initialize services
	authService := services.NewAuthService(accounts, cfg.JWT, server.clock, appLogger, server.registry)
	missionService := services.NewMissionService(missionRepo, server.clock, appLogger)
	dailyService := services.NewDailyMissionService(dailyRepo, missionRepo, server.clock, appLogger)
	todayService := services.NewTodayService(dailyRepo, dailyService, server.clock, loc, appLogger)

	// Initialize handlers
	handlers := routeHandlers{
		auth:    httpHandlers.NewAuthHandler(authService),
		mission: httpHandlers.NewMissionHandler(missionService),
		daily:   httpHandlers.NewDailyMissionHandler(dailyService),
		today:   httpHandlers.NewTodayHandler(todayService),
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	// Setup routes
	server.setupRoutes(handlers, authService)

	return server, nil
}

type routeHandlers struct {
	auth    *httpHandlers.AuthHandler
	mission *httpHandlers.MissionHandler
	daily   *httpHandlers.DailyMissionHandler
	today   *httpHandlers.TodayHandler
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
				"request_id", values.RequestID,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	allowHeaders := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	if s.config.Auth.AllowHeaderIdentity {
		allowHeaders = append(allowHeaders, s.config.Auth.IdentityHeader)
	}
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: allowHeaders,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))

	// Rate limiting middleware
	if limiter := s.rateLimiter(); limiter != nil {
		s.echo.Use(limiter)
	}

	// Security headers; the swagger UI needs inline scripts
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger")
		},
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// Timeout middleware; cancels the request context handed to storage
	if s.config.Server.RequestTimeout > 0 {
		s.echo.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: s.config.Server.RequestTimeout,
		}))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(h routeHandlers, authService *services.AuthService) {
	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.echo.Group(s.config.Server.BasePath)

	// Health check (public)
	api.GET("/health", s.healthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	loginMiddleware := []echo.MiddlewareFunc{}
	if limiter := s.loginRateLimiter(); limiter != nil {
		loginMiddleware = append(loginMiddleware, limiter)
	}
	authGroup.POST("/login", h.auth.Login, loginMiddleware...)
	authGroup.GET("/me", h.auth.Me, s.identityMiddleware(authService))

	// Mission routes (authenticated)
	missionGroup := api.Group("/missions", s.identityMiddleware(authService))
	missionGroup.GET("", h.mission.ListMissions)
	missionGroup.POST("", h.mission.CreateMission)
	missionGroup.GET("/:id", h.mission.GetMission)
	missionGroup.PUT("/:id", h.mission.UpdateMission)
	missionGroup.DELETE("/:id", h.mission.DeleteMission)

	// Daily mission routes (authenticated)
	dailyGroup := api.Group("/daily-missions", s.identityMiddleware(authService))
	dailyGroup.GET("", h.daily.ListDailyMissions)
	dailyGroup.POST("", h.daily.CreateDailyMission)
	dailyGroup.GET("/mission/:missionId", h.daily.ListByMission)
	dailyGroup.GET("/:id", h.daily.GetDailyMission)
	dailyGroup.PUT("/:id", h.daily.UpdateDailyMission)
	dailyGroup.DELETE("/:id", h.daily.DeleteDailyMission)

	// Today routes (authenticated)
	todayGroup := api.Group("/today", s.identityMiddleware(authService))
	todayGroup.GET("", h.today.ListToday)
	todayGroup.GET("/enhanced", h.today.ListToday)
	todayGroup.GET("/completed", h.today.ListCompleted)
	todayGroup.GET("/summary", h.today.Summary)
	todayGroup.POST("/quick-add", h.today.QuickAdd)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	s.registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// healthCheck reports liveness. It never names accounts or counts rows.
func (s *Server) healthCheck(c echo.Context) error {
	status := http.StatusOK
	response := map[string]interface{}{
		"status":      "ok",
		"service":     s.config.App.Name,
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"database":    "ok",
		"driver":      s.db.Driver(),
	}

	if err := s.db.HealthCheck(c.Request().Context()); err != nil {
		s.logger.Errorw("Health check failed", "error", err)
		status = http.StatusServiceUnavailable
		response["status"] = "degraded"
		response["database"] = "unavailable"
	}

	return c.JSON(status, response)
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the HTTP server
func (s *Server) Start() error {
	address := s.config.Server.GetAddr()
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler renders every error as {success:false, error}. 5xx text
// is replaced by a generic message in production.
func customErrorHandler(logger *logger.Logger, redact bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		}

		if code >= http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
			if redact {
				msg = http.StatusText(code)
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, httpHandlers.ErrorResponse{Success: false, Error: msg})
		}
		if err != nil {
			logger.Errorw("Error sending response", "error", err)
		}
	}
}
