package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/delivery/http/middleware"
	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

// AuthHandler - регистрация, вход и сохранённый route bin пользователя
type AuthHandler struct {
	authUC AuthService
	store  *session.Store
	pages  *PageHandler
	logger *zap.Logger
}

func NewAuthHandler(authUC AuthService, store *session.Store, pages *PageHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		store:  store,
		pages:  pages,
		logger: logger,
	}
}

// Register - POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pages.Error(c, errors.ErrInvalidForm)
	}

	user, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return h.pages.Error(c, err)
	}

	if err := h.startSession(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/map")
}

// LoginForm - GET /login, старая сессия сбрасывается
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if err := h.clearSession(c); err != nil {
		return err
	}
	return h.pages.LoginForm(c)
}

// Login - POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if err := h.clearSession(c); err != nil {
		return err
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pages.Error(c, errors.ErrInvalidForm)
	}

	user, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return h.pages.Error(c, err)
	}

	if err := h.startSession(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/map")
}

// Logout - GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.clearSession(c); err != nil {
		return err
	}
	return c.Redirect("/")
}

// Check godoc
// @Summary Проверка свободного имени пользователя
// @Tags Accounts
// @Produce json
// @Param username query string true "Имя пользователя"
// @Success 200 {boolean} boolean
// @Router /check [get]
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	available, err := h.authUC.UsernameAvailable(c.Context(), c.Query("username"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(available)
}

// SaveRoute godoc
// @Summary Сохранить route bin пользователя
// @Description false, если пользователь не вошёл или bin_store пуст
// @Tags Accounts
// @Produce json
// @Param bin_store query string true "Идентификатор bin"
// @Success 200 {boolean} boolean
// @Router /save_route [get]
func (h *AuthHandler) SaveRoute(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(false)
	}

	binID := c.Query("bin_store")
	if binID == "" {
		return c.JSON(false)
	}

	if err := h.authUC.SaveRouteBin(c.Context(), userID, binID); err != nil {
		appErr := utils.AsAppError(err)
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			return utils.SendError(c, err)
		}
		return c.JSON(false)
	}

	return c.JSON(true)
}

// GetSaved godoc
// @Summary Сохранённый route bin
// @Description id bin, null если ничего не сохранено, false если пользователь не вошёл
// @Tags Accounts
// @Produce json
// @Success 200 {string} string
// @Router /get_saved [get]
func (h *AuthHandler) GetSaved(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(false)
	}

	saved, err := h.authUC.SavedRouteBin(c.Context(), userID)
	if err != nil {
		appErr := utils.AsAppError(err)
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			return utils.SendError(c, err)
		}
		return c.JSON(false)
	}

	return c.JSON(saved)
}

// startSession выдаёт новый id сессии и записывает в неё пользователя
func (h *AuthHandler) startSession(c *fiber.Ctx, userID int64) error {
	sess, err := h.store.Get(c)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return err
	}

	if err := sess.Regenerate(); err != nil {
		h.logger.Error("Failed to regenerate session", zap.Error(err))
		return err
	}

	sess.Set(middleware.SessionUserKey, userID)
	if err := sess.Save(); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err))
		return err
	}
	return nil
}

func (h *AuthHandler) clearSession(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return err
	}

	if err := sess.Destroy(); err != nil {
		h.logger.Error("Failed to destroy session", zap.Error(err))
		return err
	}
	middleware.ClearUser(c)
	return nil
}
