package app

import (
	"testing"
	"time"

	"github.com/evanmoss/tally/internal/habit"
	"github.com/evanmoss/tally/internal/store"
)

func TestResolveUser(t *testing.T) {
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := resolveUser(db, ""); err == nil {
		t.Error("expected error with no accounts")
	}

	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	for i, email := range []string{"first@example.com", "second@example.com"} {
		u := store.User{ID: email, Email: email, PasswordHash: "x", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := db.CreateUser(u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	u, err := resolveUser(db, "")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if u.Email != "first@example.com" {
		t.Errorf("default user = %s, want earliest account", u.Email)
	}

	u, err = resolveUser(db, "second@example.com")
	if err != nil {
		t.Fatalf("resolve by email: %v", err)
	}
	if u.Email != "second@example.com" {
		t.Errorf("resolved %s, want second@example.com", u.Email)
	}

	if _, err := resolveUser(db, "nobody@example.com"); err == nil {
		t.Error("expected error for unknown email")
	}
}

func TestHabitTableFormatting(t *testing.T) {
	water := habit.Habit{Name: "Drink Water", Type: habit.TypeMeasurable, Unit: "glasses", Target: 8, Frequency: habit.FrequencyDaily}
	if got := habitTarget(water); got != "8 glasses/day" {
		t.Errorf("habitTarget = %q", got)
	}
	if got := habitSchedule(water); got != "daily" {
		t.Errorf("habitSchedule = %q", got)
	}

	journal := habit.Habit{Name: "Journal", Type: habit.TypeBoolean, Frequency: habit.FrequencyCustom, DaysPerWeek: 3}
	if got := habitTarget(journal); got != "-" {
		t.Errorf("habitTarget = %q", got)
	}
	if got := habitSchedule(journal); got != "3 days/week" {
		t.Errorf("habitSchedule = %q", got)
	}
}
