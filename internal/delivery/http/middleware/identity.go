package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const userIDLocal = "userID"

// Identity - middleware, извлекающий аутентифицированного владельца запроса.
// Сама аутентификация - внешний коллаборатор: провайдер идентичности
// (gateway, reverse proxy) кладёт ID пользователя в заголовок X-User-ID.
// Дальше по коду владелец передаётся только явным аргументом.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := c.Get("X-User-ID"); userID != "" {
			c.Locals(userIDLocal, userID)
		}
		return c.Next()
	}
}

// UserID возвращает ID владельца запроса или пустую строку
func UserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(userIDLocal).(string); ok {
		return userID
	}
	return ""
}
