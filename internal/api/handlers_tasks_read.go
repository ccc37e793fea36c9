package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListTasks returns the global task set ordered newest-first by id. The
// legacy API applies no per-user filter here and clients depend on seeing
// tasks owned by other accounts.
func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := handler.repositories.Tasks.ListNewestFirst()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	return c.JSON(handler.tasksToViews(tasks))
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
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

	return c.JSON(handler.taskToView(&task))
}
