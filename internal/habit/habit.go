// Package habit defines the core domain types for tally: habits and their
// daily logs.
package habit

import (
	"errors"
	"fmt"
	"time"
)

// Type distinguishes habits that are checked off from habits that are
// measured against a numeric target.
type Type string

const (
	// TypeBoolean is a done/not-done habit.
	TypeBoolean Type = "boolean"

	// TypeMeasurable is a habit with a numeric daily target and a unit.
	TypeMeasurable Type = "measurable"
)

// Frequency describes how often a habit is expected to be completed.
type Frequency string

const (
	// FrequencyDaily means the habit is expected every day.
	FrequencyDaily Frequency = "daily"

	// FrequencyCustom means the habit is expected DaysPerWeek days per week.
	FrequencyCustom Frequency = "custom"
)

// Habit is a user-defined trackable activity. A measurable habit carries a
// unit and a positive daily target; a boolean habit carries neither.
type Habit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Type        Type      `json:"type"`
	Unit        string    `json:"unit,omitempty"`
	Target      float64   `json:"target,omitempty"`
	Frequency   Frequency `json:"frequency"`
	DaysPerWeek int       `json:"daysPerWeek"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RequiredDaysPerWeek returns how many days per week count toward a weekly
// goal: 7 for daily habits, DaysPerWeek for custom ones.
func (h Habit) RequiredDaysPerWeek() int {
	if h.Frequency == FrequencyCustom && h.DaysPerWeek >= 1 && h.DaysPerWeek < 7 {
		return h.DaysPerWeek
	}
	return 7
}

// Validate checks the structural invariants of a habit.
func (h Habit) Validate() error {
	if h.Name == "" {
		return errors.New("habit name is required")
	}
	switch h.Type {
	case TypeMeasurable:
		if h.Unit == "" {
			return errors.New("measurable habit requires a unit")
		}
		if h.Target <= 0 {
			return errors.New("measurable habit requires a positive target")
		}
	case TypeBoolean:
		if h.Unit != "" || h.Target != 0 {
			return errors.New("boolean habit must not carry a unit or target")
		}
	default:
		return fmt.Errorf("unknown habit type %q", h.Type)
	}
	switch h.Frequency {
	case FrequencyDaily:
	case FrequencyCustom:
		if h.DaysPerWeek < 1 || h.DaysPerWeek > 7 {
			return fmt.Errorf("daysPerWeek must be 1-7, got %d", h.DaysPerWeek)
		}
	default:
		return fmt.Errorf("unknown frequency %q", h.Frequency)
	}
	return nil
}
