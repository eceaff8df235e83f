package analytics

import (
	"fmt"
	"math"

	"github.com/evanmoss/tally/internal/habit"
)

// Summary holds the scalar rollups for one habit over a date range.
type Summary struct {
	// TotalValue sums logged values. Measurable habits only.
	TotalValue float64 `json:"totalValue"`

	// ActiveDays counts days with any activity: a positive value or a
	// true flag.
	ActiveDays int `json:"activeDays"`

	// TotalSessions counts done days. Boolean habits only.
	TotalSessions int `json:"totalSessions"`

	// AverageValue is TotalValue per active day, 0 when there are none.
	AverageValue float64 `json:"averageValue"`

	// CompletionRate is ActiveDays over the range length, as a percentage.
	CompletionRate float64 `json:"completionRate"`

	// RangeDays is the number of calendar days in the range.
	RangeDays int `json:"rangeDays"`
}

// Summarize computes the scalar summary for a habit over [start, end].
// Corrupt rows contribute zero and come back as diagnostics.
func Summarize(h habit.Habit, logs map[string]habit.LogValue, start, end string) (Summary, []Diagnostic) {
	var (
		s     Summary
		diags []Diagnostic
	)
	for _, day := range DaysInRange(start, end) {
		s.RangeDays++
		v, logged := logs[day]
		if !logged {
			continue
		}
		if d := checkValue(h, day, v); d != nil {
			diags = append(diags, *d)
			continue
		}

		switch h.Type {
		case habit.TypeMeasurable:
			n, _ := v.Num()
			s.TotalValue += n
			if n > 0 {
				s.ActiveDays++
			}
		case habit.TypeBoolean:
			if done, _ := v.Bool(); done {
				s.TotalSessions++
				s.ActiveDays++
			}
		}
	}

	if s.ActiveDays > 0 {
		s.AverageValue = s.TotalValue / float64(s.ActiveDays)
	}
	if s.RangeDays > 0 {
		s.CompletionRate = float64(s.ActiveDays) / float64(s.RangeDays) * 100
	}
	return s, diags
}

// Insight is one entry in the rotating insight carousel. The engine's
// responsibility ends at producing the ordered list; rotation state lives
// in the client.
type Insight struct {
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

// Insights derives the insight messages for a habit from its summary. The
// habit type picks the template family; there is no further branching.
func Insights(h habit.Habit, s Summary) []Insight {
	if h.Type == habit.TypeMeasurable {
		return []Insight{
			{Icon: "📊", Message: fmt.Sprintf("Averaging %.1f %s per day", s.AverageValue, h.Unit)},
			{Icon: "🔥", Message: "Strong consistency! Keep it up!"},
			{Icon: "📈", Message: "Improving trend detected"},
		}
	}
	return []Insight{
		{Icon: "✅", Message: fmt.Sprintf("%d%% completion rate", int(math.Round(s.CompletionRate)))},
		{Icon: "🎯", Message: "Great consistency!"},
		{Icon: "⭐", Message: "You are on track!"},
	}
}
