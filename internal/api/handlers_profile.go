package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/organizo-app/organizo/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

// UpdateProfile applies the fields present in the body and silently ignores
// the rest. It always reports success, whether or not anything changed.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]any{}
	if input.Nome != nil {
		updates["nome"] = *input.Nome
	}
	if input.Email != nil {
		email := services.NormalizeAuthEmail(*input.Email)
		if email == "" {
			return apiError(c, fiber.StatusBadRequest, "invalid email")
		}
		if email != user.Email {
			taken, err := handler.repositories.Users.ExistsByNormalizedEmail(email)
			if err != nil {
				return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
			}
			if taken {
				return apiError(c, fiber.StatusConflict, "email already registered")
			}
		}
		updates["email"] = email
	}
	if input.Telefone != nil {
		updates["telefone"] = *input.Telefone
	}
	if input.CEP != nil {
		updates["cep"] = *input.CEP
	}
	if input.DataNascimento != nil {
		updates["data_nascimento"] = *input.DataNascimento
	}

	if len(updates) > 0 {
		if err := handler.repositories.Users.UpdateByID(user.ID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}
