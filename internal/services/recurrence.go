package services

import (
	"time"

	"github.com/organizo-app/organizo/internal/models"
	"github.com/teambition/rrule-go"
)

func recurrenceFrequency(period string) rrule.Frequency {
	switch period {
	case models.RecurrenceWeekly:
		return rrule.WEEKLY
	case models.RecurrenceMonthly:
		return rrule.MONTHLY
	case models.RecurrenceYearly:
		return rrule.YEARLY
	default:
		return rrule.DAILY
	}
}

// NextOccurrence computes the next repeat of a recurrent task strictly after
// the given instant, anchored on its due date. Returns nil when the task is
// not recurrent, has no valid period, or has no due date to anchor on. This
// is a read-model convenience; nothing is ever scheduled from it.
func NextOccurrence(task *models.Task, after time.Time) *time.Time {
	if !task.Recorrente || task.DataLimite == nil || !models.IsValidRecurrence(task.Recorrencia) {
		return nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    recurrenceFrequency(task.Recorrencia),
		Dtstart: *task.DataLimite,
	})
	if err != nil {
		return nil
	}

	next := rule.After(after, false)
	if next.IsZero() {
		return nil
	}
	return &next
}
