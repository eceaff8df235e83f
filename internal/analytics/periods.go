package analytics

import (
	"fmt"
	"math"

	"github.com/evanmoss/tally/internal/habit"
)

// Granularity selects the aggregation bucket size.
type Granularity string

const (
	// GranularityWeek buckets into 7-day windows anchored at the range start.
	GranularityWeek Granularity = "week"

	// GranularityMonth buckets into calendar months clipped to the range.
	GranularityMonth Granularity = "month"
)

// PeriodStat is one aggregation bucket's achieved/target figures.
//
// For measurable habits AchievedTotal sums the logged values and TargetTotal
// accrues the daily target for every day actually in the bucket; the
// percentage is display pro-rating against TargetTotal, while IsSuccess
// compares AchievedTotal against target x RequiredDays. For boolean habits
// CompletedDays counts done days, the percentage pro-rates against
// CommittedDays (days actually in the bucket), and IsSuccess requires
// RequiredDays completions even in a truncated bucket.
type PeriodStat struct {
	Label         string  `json:"label"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	AchievedTotal float64 `json:"achievedTotal"`
	TargetTotal   float64 `json:"targetTotal"`
	CompletedDays int     `json:"completedDays"`
	CommittedDays int     `json:"committedDays"`
	RequiredDays  int     `json:"requiredDays"`
	Percentage    int     `json:"percentage"`
	IsSuccess     bool    `json:"isSuccess"`
}

// Aggregate buckets a habit's logs over [start, end] and computes per-period
// stats. logs maps date keys to raw values; days without an entry contribute
// zero. Corrupt rows (value kind not matching the habit type) also
// contribute zero and are reported as diagnostics rather than aborting the
// aggregation. An inverted range yields no periods.
func Aggregate(h habit.Habit, logs map[string]habit.LogValue, start, end string, g Granularity) ([]PeriodStat, []Diagnostic) {
	var buckets []Bucket
	if g == GranularityMonth {
		buckets = MonthBuckets(start, end)
	} else {
		buckets = WeekBuckets(start, end)
	}

	var (
		periods []PeriodStat
		diags   []Diagnostic
	)
	for i, b := range buckets {
		p := PeriodStat{Start: b.Start, End: b.End}
		if g == GranularityMonth {
			if t, ok := parseKey(b.Start); ok {
				p.Label = t.Format("Jan 2006")
			}
		} else {
			p.Label = fmt.Sprintf("W%d", i+1)
		}

		for _, day := range DaysInRange(b.Start, b.End) {
			p.CommittedDays++
			v, logged := logs[day]
			if !logged {
				if h.Type == habit.TypeMeasurable {
					p.TargetTotal += h.Target
				}
				continue
			}
			if d := checkValue(h, day, v); d != nil {
				diags = append(diags, *d)
				if h.Type == habit.TypeMeasurable {
					p.TargetTotal += h.Target
				}
				continue
			}

			switch h.Type {
			case habit.TypeMeasurable:
				n, _ := v.Num()
				p.AchievedTotal += n
				p.TargetTotal += h.Target
				if n > 0 {
					p.CompletedDays++
				}
			case habit.TypeBoolean:
				if done, _ := v.Bool(); done {
					p.CompletedDays++
				}
			}
		}

		p.RequiredDays = requiredDaysInBucket(h, g, p.CommittedDays)
		p.Percentage = periodPercentage(h, p)
		p.IsSuccess = periodSuccess(h, p)
		periods = append(periods, p)
	}
	return periods, diags
}

// requiredDaysInBucket returns how many completed days (or daily targets)
// the bucket demands for success. Week buckets always demand the full
// weekly commitment, even when truncated. Month buckets scale the weekly
// commitment to the bucket length, never below one day.
func requiredDaysInBucket(h habit.Habit, g Granularity, committedDays int) int {
	rdw := h.RequiredDaysPerWeek()
	if g != GranularityMonth {
		return rdw
	}
	required := int(math.Round(float64(rdw) / 7.0 * float64(committedDays)))
	if required < 1 {
		required = 1
	}
	return required
}

// periodPercentage computes the clamped display percentage for a bucket.
// A zero denominator reports 0.
func periodPercentage(h habit.Habit, p PeriodStat) int {
	var ratio float64
	switch {
	case h.Type == habit.TypeMeasurable && p.TargetTotal > 0:
		ratio = p.AchievedTotal / p.TargetTotal
	case h.Type == habit.TypeBoolean && p.CommittedDays > 0:
		ratio = float64(p.CompletedDays) / float64(p.CommittedDays)
	default:
		return 0
	}

	pct := int(math.Round(ratio * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// periodSuccess applies the goal-based success rule: cumulative total
// against target x required days for measurable habits, completed days
// against required days for boolean ones.
func periodSuccess(h habit.Habit, p PeriodStat) bool {
	if h.Type == habit.TypeMeasurable {
		return p.AchievedTotal >= h.Target*float64(p.RequiredDays)
	}
	return p.CompletedDays >= p.RequiredDays
}

// WeeklyRollup summarizes period stats into a weeks-done count and an
// overall success rate.
type WeeklyRollup struct {
	WeeksDone   int `json:"weeksDone"`
	TotalWeeks  int `json:"totalWeeks"`
	SuccessRate int `json:"successRate"`
}

// RollupWeeks counts successful periods and derives the success rate.
// Zero periods reports a zero rate.
func RollupWeeks(periods []PeriodStat) WeeklyRollup {
	r := WeeklyRollup{TotalWeeks: len(periods)}
	for _, p := range periods {
		if p.IsSuccess {
			r.WeeksDone++
		}
	}
	if r.TotalWeeks > 0 {
		r.SuccessRate = int(math.Round(float64(r.WeeksDone) / float64(r.TotalWeeks) * 100))
	}
	return r
}
