package models

import "testing"

func TestIsValidPriority(t *testing.T) {
	for _, value := range []string{PriorityLow, PriorityMedium, PriorityHigh} {
		if !IsValidPriority(value) {
			t.Fatalf("expected %q to be a valid priority", value)
		}
	}
	for _, value := range []string{"", "urgente", "MEDIA"} {
		if IsValidPriority(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestIsValidRecurrence(t *testing.T) {
	for _, value := range []string{RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly} {
		if !IsValidRecurrence(value) {
			t.Fatalf("expected %q to be a valid recurrence period", value)
		}
	}
	for _, value := range []string{"", "quinzenal"} {
		if IsValidRecurrence(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}
