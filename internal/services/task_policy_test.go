package services

import (
	"testing"
	"time"

	"github.com/organizo-app/organizo/internal/models"
)

func boolPtr(value bool) *bool { return &value }

func TestApplyCompletionTransitionIntoCompleted(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	task := models.Task{Concluida: false}

	ApplyCompletionTransition(&task, boolPtr(true), 7, now)

	if !task.Concluida {
		t.Fatal("expected task to be completed")
	}
	if task.DataConclusao == nil || !task.DataConclusao.Equal(now) {
		t.Fatalf("expected completion timestamp %v, got %v", now, task.DataConclusao)
	}
	if task.ConcluidaPorID == nil || *task.ConcluidaPorID != 7 {
		t.Fatalf("expected completer 7, got %v", task.ConcluidaPorID)
	}
}

func TestApplyCompletionTransitionOutOfCompleted(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	completer := uint(7)
	task := models.Task{
		Concluida:      true,
		DataConclusao:  &completedAt,
		ConcluidaPorID: &completer,
	}

	ApplyCompletionTransition(&task, boolPtr(false), 7, completedAt.Add(time.Hour))

	if task.Concluida {
		t.Fatal("expected task to be reopened")
	}
	if task.DataConclusao != nil {
		t.Fatalf("expected completion timestamp cleared, got %v", task.DataConclusao)
	}
	if task.ConcluidaPorID != nil {
		t.Fatalf("expected completer cleared, got %v", task.ConcluidaPorID)
	}
}

func TestApplyCompletionTransitionKeepsTimestampWhenAlreadyCompleted(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	completer := uint(7)
	task := models.Task{
		Concluida:      true,
		DataConclusao:  &completedAt,
		ConcluidaPorID: &completer,
	}

	ApplyCompletionTransition(&task, boolPtr(true), 9, completedAt.Add(time.Hour))

	if task.DataConclusao == nil || !task.DataConclusao.Equal(completedAt) {
		t.Fatalf("expected original completion timestamp kept, got %v", task.DataConclusao)
	}
	if task.ConcluidaPorID == nil || *task.ConcluidaPorID != 7 {
		t.Fatalf("expected original completer kept, got %v", task.ConcluidaPorID)
	}
}

func TestApplyCompletionTransitionIgnoresAbsentFlag(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	task := models.Task{Concluida: true, DataConclusao: &completedAt}

	ApplyCompletionTransition(&task, nil, 7, completedAt.Add(time.Hour))

	if !task.Concluida || task.DataConclusao == nil {
		t.Fatal("expected untouched completion state for absent flag")
	}
}
