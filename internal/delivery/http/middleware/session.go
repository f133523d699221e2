package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

const (
	// SessionUserKey - ключ пользователя в сессии
	SessionUserKey = "user_id"

	userLocalsKey = "session_user_id"
)

// LoadUser кладёт user_id из сессии в Locals. Запрос без сессии проходит дальше анонимно.
func LoadUser(store *session.Store, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			logger.Warn("Failed to load session", zap.Error(err))
			return c.Next()
		}

		if id, ok := sess.Get(SessionUserKey).(int64); ok {
			c.Locals(userLocalsKey, id)
		}
		return c.Next()
	}
}

// UserID returns the logged in user, if any.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(userLocalsKey).(int64)
	return id, ok
}

// ClearUser forgets the user for the rest of the request after the session was destroyed.
func ClearUser(c *fiber.Ctx) {
	c.Locals(userLocalsKey, nil)
}
