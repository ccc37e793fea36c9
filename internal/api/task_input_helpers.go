package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/organizo-app/organizo/internal/models"
)

var (
	errUnknownAssignee = errors.New("unknown responsavel")
	errUnknownSubtask  = errors.New("unknown subtarefa id")
	errSelfSubtask     = errors.New("task cannot be its own subtask")
)

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		if first.Tag() == "required" {
			return fmt.Sprintf("%s is required", first.Field())
		}
		return fmt.Sprintf("invalid %s", first.Field())
	}
	return "invalid payload"
}

func normalizeTagNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func (handler *Handler) resolveAssignee(assigneeID *uint) error {
	if assigneeID == nil {
		return nil
	}
	exists, err := handler.repositories.Users.ExistsByID(*assigneeID)
	if err != nil {
		return err
	}
	if !exists {
		return errUnknownAssignee
	}
	return nil
}

// resolveSubtasks loads the referenced tasks and rejects unknown ids and
// self references. Repeated ids collapse to one; the relation is asymmetric,
// so no cycle check beyond self.
func (handler *Handler) resolveSubtasks(taskID uint, subtaskIDs []uint) ([]models.Task, error) {
	unique := make([]uint, 0, len(subtaskIDs))
	seen := make(map[uint]struct{}, len(subtaskIDs))
	for _, subtaskID := range subtaskIDs {
		if subtaskID == taskID {
			return nil, errSelfSubtask
		}
		if _, duplicate := seen[subtaskID]; duplicate {
			continue
		}
		seen[subtaskID] = struct{}{}
		unique = append(unique, subtaskID)
	}

	subtasks, err := handler.repositories.Tasks.FindManyByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(subtasks) != len(unique) {
		return nil, errUnknownSubtask
	}
	return subtasks, nil
}

func taskReferenceError(err error) (string, bool) {
	switch {
	case errors.Is(err, errUnknownAssignee):
		return "unknown responsavel", true
	case errors.Is(err, errUnknownSubtask):
		return "unknown subtarefa id", true
	case errors.Is(err, errSelfSubtask):
		return "task cannot be its own subtask", true
	default:
		return "", false
	}
}
