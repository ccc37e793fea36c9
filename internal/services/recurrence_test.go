package services

import (
	"testing"
	"time"

	"github.com/organizo-app/organizo/internal/models"
)

func TestNextOccurrenceDaily(t *testing.T) {
	due := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	task := models.Task{
		Recorrente:  true,
		Recorrencia: models.RecurrenceDaily,
		DataLimite:  &due,
	}

	next := NextOccurrence(&task, due)
	if next == nil {
		t.Fatal("expected a next occurrence")
	}
	if want := due.AddDate(0, 0, 1); !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, *next)
	}
}

func TestNextOccurrenceMonthlySkipsPast(t *testing.T) {
	due := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	task := models.Task{
		Recorrente:  true,
		Recorrencia: models.RecurrenceMonthly,
		DataLimite:  &due,
	}

	after := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	next := NextOccurrence(&task, after)
	if next == nil {
		t.Fatal("expected a next occurrence")
	}
	if want := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, *next)
	}
}

func TestNextOccurrenceNilCases(t *testing.T) {
	due := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		task models.Task
	}{
		{name: "not recurrent", task: models.Task{Recorrencia: models.RecurrenceDaily, DataLimite: &due}},
		{name: "no due date", task: models.Task{Recorrente: true, Recorrencia: models.RecurrenceDaily}},
		{name: "no period", task: models.Task{Recorrente: true, DataLimite: &due}},
		{name: "invalid period", task: models.Task{Recorrente: true, Recorrencia: "quinzenal", DataLimite: &due}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if next := NextOccurrence(&testCase.task, due); next != nil {
				t.Fatalf("expected nil occurrence, got %v", *next)
			}
		})
	}
}
