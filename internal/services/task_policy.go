package services

import (
	"time"

	"github.com/organizo-app/organizo/internal/models"
)

// ApplyCompletionTransition derives the completion timestamp and completer
// from the stored task and the incoming completion flag. The invariant lives
// here, at the update boundary, never in the storage layer: data_conclusao is
// non-null exactly when the task most recently transitioned into completed.
//
// A nil incoming flag means the request did not touch the field.
func ApplyCompletionTransition(task *models.Task, incoming *bool, actorID uint, now time.Time) {
	if incoming == nil {
		return
	}

	switch {
	case *incoming && !task.Concluida:
		completedAt := now
		task.DataConclusao = &completedAt
		task.ConcluidaPorID = &actorID
	case !*incoming && task.Concluida:
		task.DataConclusao = nil
		task.ConcluidaPorID = nil
	}
	task.Concluida = *incoming
}
