package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/organizo-app/organizo/internal/models"
	"gorm.io/gorm"
)

// Annotations are personal notes, so unlike tasks every operation here is
// scoped to the owner.

func (handler *Handler) ListAnnotations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	annotations, err := handler.repositories.Annotations.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch annotations")
	}
	return c.JSON(annotations)
}

func (handler *Handler) CreateAnnotation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := annotationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	annotation := models.Annotation{
		UsuarioID: user.ID,
		Conteudo:  input.Conteudo,
	}
	if err := handler.repositories.Annotations.Create(&annotation); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create annotation")
	}
	return c.Status(fiber.StatusCreated).JSON(annotation)
}

func (handler *Handler) GetAnnotation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	annotationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	annotation, err := handler.repositories.Annotations.FindByIDForUser(annotationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch annotation")
	}
	return c.JSON(annotation)
}

func (handler *Handler) UpdateAnnotation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	annotationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	annotation, err := handler.repositories.Annotations.FindByIDForUser(annotationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch annotation")
	}

	input := annotationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	annotation.Conteudo = input.Conteudo
	if err := handler.repositories.Annotations.Save(&annotation); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update annotation")
	}
	return c.JSON(annotation)
}

func (handler *Handler) DeleteAnnotation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	annotationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	deleted, err := handler.repositories.Annotations.Delete(annotationID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete annotation")
	}
	if deleted == 0 {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
