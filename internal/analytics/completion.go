package analytics

import (
	"fmt"

	"github.com/evanmoss/tally/internal/habit"
)

// CompletionMode selects which threshold makes a day count as completed.
// Different derived metrics deliberately use different thresholds: streaks
// and active-day counts use AnyActivity, success rates use GoalMet.
type CompletionMode int

const (
	// ModeAnyActivity counts a measurable day with any positive value.
	ModeAnyActivity CompletionMode = iota

	// ModeGoalMet counts a measurable day only when the value reaches the
	// habit's daily target.
	ModeGoalMet
)

// Diagnostic records a data problem encountered during a computation. The
// offending record contributes zero and the computation continues; the
// caller decides whether to log the diagnostic.
type Diagnostic struct {
	HabitID string `json:"habitId"`
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}

// checkValue returns a diagnostic when a log value does not match its
// habit's declared type, nil otherwise. Empty values are fine: they mean
// "no log" and classify as not completed.
func checkValue(h habit.Habit, date string, v habit.LogValue) *Diagnostic {
	switch v.Kind() {
	case habit.KindNone:
		return nil
	case habit.KindNumeric:
		if h.Type != habit.TypeMeasurable {
			return &Diagnostic{HabitID: h.ID, Date: date, Reason: "numeric value on boolean habit"}
		}
		if h.Target <= 0 {
			return &Diagnostic{HabitID: h.ID, Date: date, Reason: fmt.Sprintf("measurable habit has non-positive target %g", h.Target)}
		}
	case habit.KindFlag:
		if h.Type != habit.TypeBoolean {
			return &Diagnostic{HabitID: h.ID, Date: date, Reason: "boolean value on measurable habit"}
		}
	}
	return nil
}

// IsCompleted reports whether a single log value satisfies the habit for a
// day under the given mode. A missing log (zero LogValue) or a value of the
// wrong kind for the habit's type is never completed.
func IsCompleted(h habit.Habit, v habit.LogValue, mode CompletionMode) bool {
	switch h.Type {
	case habit.TypeBoolean:
		b, ok := v.Bool()
		return ok && b
	case habit.TypeMeasurable:
		n, ok := v.Num()
		if !ok {
			return false
		}
		if mode == ModeGoalMet {
			return h.Target > 0 && n >= h.Target
		}
		return n > 0
	}
	return false
}

// IsPartial reports whether a measurable day has progress short of the
// target. Always false for boolean habits and missing logs.
func IsPartial(h habit.Habit, v habit.LogValue) bool {
	if h.Type != habit.TypeMeasurable {
		return false
	}
	n, ok := v.Num()
	return ok && n > 0 && n < h.Target
}
