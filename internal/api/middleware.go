package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/organizo-app/organizo/internal/models"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired validates the bearer token and loads the account it is bound
// to. Every endpoint except login, register, health, and static media sits
// behind it.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := handler.tokens.Parse(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil || !user.IsAtivo {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
