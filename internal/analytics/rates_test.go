package analytics

import (
	"testing"

	"github.com/evanmoss/tally/internal/habit"
)

func TestSuccessRate_DailyMeasurable(t *testing.T) {
	// Goal met on 4 of the last 7 days.
	logs := map[string]habit.LogValue{
		"2024-12-10": habit.Numeric(8),
		"2024-12-09": habit.Numeric(8),
		"2024-12-08": habit.Numeric(3), // partial: not goal-met
		"2024-12-07": habit.Numeric(9),
		"2024-12-06": habit.Numeric(8),
	}
	got := SuccessRate(waterHabit, logs, "2024-12-10", 7)
	if got != 57 {
		t.Errorf("expected round(4/7*100)=57, got %d", got)
	}
}

func TestSuccessRate_CustomProRated(t *testing.T) {
	// 3 days/week over a 7-day window expects 3 completions.
	h := habit.Habit{ID: "gym", Type: habit.TypeBoolean, Frequency: habit.FrequencyCustom, DaysPerWeek: 3}
	logs := map[string]habit.LogValue{
		"2024-12-10": habit.Flag(true),
		"2024-12-08": habit.Flag(true),
		"2024-12-05": habit.Flag(true),
	}
	if got := SuccessRate(h, logs, "2024-12-10", 7); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}

	// Over 30 days the expectation scales to (3/7)*30 ~= 12.86.
	if got := SuccessRate(h, logs, "2024-12-10", 30); got != 23 {
		t.Errorf("expected round(3/12.857*100)=23, got %d", got)
	}
}

func TestSuccessRate_ClampsAtHundred(t *testing.T) {
	h := habit.Habit{ID: "gym", Type: habit.TypeBoolean, Frequency: habit.FrequencyCustom, DaysPerWeek: 2}
	logs := map[string]habit.LogValue{
		"2024-12-10": habit.Flag(true),
		"2024-12-09": habit.Flag(true),
		"2024-12-08": habit.Flag(true),
		"2024-12-07": habit.Flag(true),
	}
	if got := SuccessRate(h, logs, "2024-12-10", 7); got != 100 {
		t.Errorf("overachieving must clamp at 100, got %d", got)
	}
}

func TestSuccessRate_EmptyWindow(t *testing.T) {
	if got := SuccessRate(waterHabit, nil, "2024-12-10", 0); got != 0 {
		t.Errorf("expected 0 for empty window, got %d", got)
	}
}
