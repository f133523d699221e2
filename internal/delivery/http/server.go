package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/config"
	"github.com/runanywhere/runanywhere/internal/delivery/http/handler"
	"github.com/runanywhere/runanywhere/internal/delivery/http/middleware"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
)

const sessionCookieName = "session_id"

// HealthCheck - проверка зависимости для /api/v1/health
type HealthCheck func(ctx context.Context) error

// Handlers - все хендлеры сервера
type Handlers struct {
	Pages    *handler.PageHandler
	Segments *handler.SegmentHandler
	Auth     *handler.AuthHandler
	Bins     *handler.BinHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	sessions *session.Store
	handlers Handlers
	checks   map[string]HealthCheck
}

// NewSessionStore - серверные сессии, cookie живёт до закрытия браузера
func NewSessionStore(cfg *config.SessionConfig, storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:           storage,
		Expiration:        cfg.Expiration,
		KeyLookup:         "cookie:" + sessionCookieName,
		CookieSecure:      cfg.CookieSecure,
		CookieHTTPOnly:    true,
		CookieSameSite:    "Lax",
		CookieSessionOnly: true,
		KeyGenerator:      uuid.NewString,
	})
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *session.Store,
	handlers Handlers,
	checks map[string]HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "RunAnywhere",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		handlers: handlers,
		checks:   checks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.LoadUser(s.sessions, s.logger))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Pages
	s.app.Get("/", h.Pages.Index)
	s.app.Get("/map", h.Pages.Map)
	s.app.Get("/register", h.Pages.RegisterForm)
	s.app.Post("/register", h.Auth.Register)
	s.app.Get("/login", h.Auth.LoginForm)
	s.app.Post("/login", h.Auth.Login)
	s.app.Get("/logout", h.Auth.Logout)

	// JSON endpoints used by the map page
	s.app.Get("/get_routes", h.Segments.GetRoutes)
	s.app.Get("/check", h.Auth.Check)
	s.app.Get("/save_route", h.Auth.SaveRoute)
	s.app.Get("/get_saved", h.Auth.GetSaved)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Route builder
	api.Post("/bins", h.Bins.Create)
	api.Get("/bins/:id", h.Bins.Get)
	api.Put("/bins/:id", h.Bins.Append)
	api.Get("/bins/:id/gpx", h.Bins.ExportGPX)
	api.Get("/bins/:id/connectors", h.Bins.Connectors)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	deps := make(fiber.Map, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "unavailable"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 роутера, паники, AppError)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			logger.Warn("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", e.Code),
				zap.Error(err),
			)
			return c.Status(e.Code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "HTTP_ERROR",
					"message": e.Message,
				},
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
