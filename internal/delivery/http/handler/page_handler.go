package handler

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/delivery/http/middleware"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"index", "map", "register", "login", "error"}

// PageData - данные для layout.html и страниц
type PageData struct {
	Title       string
	LoggedIn    bool
	MapboxToken string
	CenterLat   float64
	CenterLon   float64
	Status      int
	Message     string
}

// PageHandler рендерит HTML страницы. Каждая страница парсится вместе с layout отдельно,
// так как все они определяют один и тот же блок "content".
type PageHandler struct {
	pages       map[string]*template.Template
	mapboxToken string
	logger      *zap.Logger
}

func NewPageHandler(mapboxToken string, logger *zap.Logger) (*PageHandler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &PageHandler{
		pages:       pages,
		mapboxToken: mapboxToken,
		logger:      logger,
	}, nil
}

func (h *PageHandler) render(c *fiber.Ctx, status int, page string, data PageData) error {
	tmpl, ok := h.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	_, data.LoggedIn = middleware.UserID(c)

	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return tmpl.ExecuteTemplate(c.Response().BodyWriter(), "layout", data)
}

// Index - стартовая страница
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "index", PageData{Title: "Home"})
}

// Map - страница карты
func (h *PageHandler) Map(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "map", PageData{
		Title:       "Map",
		MapboxToken: h.mapboxToken,
		CenterLat:   37.7749,
		CenterLon:   -122.4194,
	})
}

func (h *PageHandler) RegisterForm(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "register", PageData{Title: "Register"})
}

func (h *PageHandler) LoginForm(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "login", PageData{Title: "Log In"})
}

// Error рендерит error.html со статусом и сообщением AppError
func (h *PageHandler) Error(c *fiber.Ctx, err error) error {
	appErr := utils.AsAppError(err)
	return h.render(c, appErr.StatusCode, "error", PageData{
		Title:   "Error",
		Status:  appErr.StatusCode,
		Message: appErr.Message,
	})
}
