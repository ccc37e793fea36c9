package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const attachmentSubdir = "tarefas/anexos"

// UploadTaskAttachment stores a multipart file under the media root and
// records its relative path on the task. The stored name is a fresh uuid so
// uploads never collide or overwrite each other.
func (handler *Handler) UploadTaskAttachment(c *fiber.Ctx) error {
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

	file, err := c.FormFile("anexo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "anexo file is required")
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	relativePath := filepath.ToSlash(filepath.Join(attachmentSubdir, uuid.NewString()+extension))

	targetPath := filepath.Join(handler.mediaRoot, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store attachment")
	}
	if err := c.SaveFile(file, targetPath); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store attachment")
	}

	if err := handler.repositories.Tasks.UpdateAttachment(task.ID, relativePath); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store attachment")
	}
	task.Anexo = relativePath

	return c.JSON(handler.taskToView(&task))
}
