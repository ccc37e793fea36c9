package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/organizo-app/organizo/internal/models"
	"github.com/organizo-app/organizo/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := taskWriteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	if err := handler.resolveAssignee(input.Responsavel); err != nil {
		if message, known := taskReferenceError(err); known {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	subtasks, err := handler.resolveSubtasks(0, input.Subtarefas)
	if err != nil {
		if message, known := taskReferenceError(err); known {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	tags, err := handler.repositories.Tasks.FindOrCreateTagsByName(normalizeTagNames(input.Tags))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}

	// The owner is always the caller, whatever the body says.
	task := models.Task{
		UsuarioID:       user.ID,
		Titulo:          input.Titulo,
		Descricao:       input.Descricao,
		Prioridade:      defaultPriority(input.Prioridade),
		DataLimite:      input.DataLimite,
		Categoria:       input.Categoria,
		ResponsavelID:   input.Responsavel,
		Lembrete:        input.Lembrete,
		Recorrente:      input.Recorrente,
		Recorrencia:     input.Recorrencia,
		LembreteEnviado: input.LembreteEnviado,
		Tags:            tags,
		Subtarefas:      subtasks,
	}
	services.ApplyCompletionTransition(&task, &input.Concluida, user.ID, time.Now().In(handler.location))

	if err := handler.repositories.Tasks.Create(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.taskToView(&task))
}

// ReplaceTask is the PUT handler: every writable field takes the incoming
// value, absent optionals are cleared. The completion invariant is applied
// against the stored flag before persisting.
func (handler *Handler) ReplaceTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	task, err := handler.repositories.Tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch task")
	}

	input := taskWriteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	if err := handler.resolveAssignee(input.Responsavel); err != nil {
		if message, known := taskReferenceError(err); known {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}
	subtasks, err := handler.resolveSubtasks(task.ID, input.Subtarefas)
	if err != nil {
		if message, known := taskReferenceError(err); known {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}
	tags, err := handler.repositories.Tasks.FindOrCreateTagsByName(normalizeTagNames(input.Tags))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}

	services.ApplyCompletionTransition(&task, &input.Concluida, user.ID, time.Now().In(handler.location))
	task.Titulo = input.Titulo
	task.Descricao = input.Descricao
	task.Prioridade = defaultPriority(input.Prioridade)
	task.DataLimite = input.DataLimite
	task.Categoria = input.Categoria
	task.ResponsavelID = input.Responsavel
	task.Lembrete = input.Lembrete
	task.Recorrente = input.Recorrente
	task.Recorrencia = input.Recorrencia
	task.LembreteEnviado = input.LembreteEnviado

	if err := handler.persistTaskWithRelations(&task, tags, subtasks); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}

	return c.JSON(handler.taskToView(&task))
}

// PatchTask applies a partial update: nil pointers mean the field was absent
// and keeps its stored value.
func (handler *Handler) PatchTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	task, err := handler.repositories.Tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch task")
	}

	input := taskPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	if input.Responsavel != nil {
		if err := handler.resolveAssignee(input.Responsavel); err != nil {
			if message, known := taskReferenceError(err); known {
				return apiError(c, fiber.StatusBadRequest, message)
			}
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}

	var subtasks []models.Task
	if input.Subtarefas != nil {
		subtasks, err = handler.resolveSubtasks(task.ID, *input.Subtarefas)
		if err != nil {
			if message, known := taskReferenceError(err); known {
				return apiError(c, fiber.StatusBadRequest, message)
			}
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}

	var tags []models.Tag
	if input.Tags != nil {
		tags, err = handler.repositories.Tasks.FindOrCreateTagsByName(normalizeTagNames(*input.Tags))
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}

	services.ApplyCompletionTransition(&task, input.Concluida, user.ID, time.Now().In(handler.location))
	if input.Titulo != nil {
		task.Titulo = *input.Titulo
	}
	if input.Descricao != nil {
		task.Descricao = *input.Descricao
	}
	if input.Prioridade != nil {
		task.Prioridade = *input.Prioridade
	}
	if input.DataLimite != nil {
		task.DataLimite = input.DataLimite
	}
	if input.Categoria != nil {
		task.Categoria = *input.Categoria
	}
	if input.Responsavel != nil {
		task.ResponsavelID = input.Responsavel
	}
	if input.Lembrete != nil {
		task.Lembrete = input.Lembrete
	}
	if input.Recorrente != nil {
		task.Recorrente = *input.Recorrente
	}
	if input.Recorrencia != nil {
		task.Recorrencia = *input.Recorrencia
	}
	if input.LembreteEnviado != nil {
		task.LembreteEnviado = *input.LembreteEnviado
	}

	if err := handler.repositories.Tasks.Save(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}
	if input.Tags != nil {
		if err := handler.repositories.Tasks.ReplaceTags(&task, tags); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
		task.Tags = tags
	}
	if input.Subtarefas != nil {
		if err := handler.repositories.Tasks.ReplaceSubtasks(&task, subtasks); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
		task.Subtarefas = subtasks
	}

	return c.JSON(handler.taskToView(&task))
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	if _, err := handler.repositories.Tasks.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}

	if err := handler.repositories.Tasks.Delete(taskID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) persistTaskWithRelations(task *models.Task, tags []models.Tag, subtasks []models.Task) error {
	if err := handler.repositories.Tasks.Save(task); err != nil {
		return err
	}
	if err := handler.repositories.Tasks.ReplaceTags(task, tags); err != nil {
		return err
	}
	if err := handler.repositories.Tasks.ReplaceSubtasks(task, subtasks); err != nil {
		return err
	}
	task.Tags = tags
	task.Subtarefas = subtasks
	return nil
}

func defaultPriority(value string) string {
	if !models.IsValidPriority(value) {
		return models.PriorityMedium
	}
	return value
}
