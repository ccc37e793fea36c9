package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/organizo-app/organizo/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "incomplete input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "incomplete input")
	}

	throttleKey := loginThrottleKey(c, email)
	now := time.Now().In(handler.location)
	if handler.loginThrottle.blocked(throttleKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Login(email, password)
	if err != nil {
		handler.loginThrottle.recordFailure(throttleKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginThrottle.clear(throttleKey)

	token, err := handler.tokens.Issue(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"token": token})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "incomplete input")
	}

	registration, err := services.NormalizeRegistrationInput(input.Nome, input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "incomplete input")
	}

	user, err := handler.authService.Register(registration)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	token, err := handler.tokens.Issue(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}
