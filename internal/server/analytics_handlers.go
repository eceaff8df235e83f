package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/evanmoss/tally/internal/analytics"
	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/habit"
)

// habitAnalyticsResponse mirrors the per-habit analytics payload.
// TotalValue and AverageValue are present for measurable habits only.
type habitAnalyticsResponse struct {
	HabitID        string   `json:"habitId"`
	HabitName      string   `json:"habitName"`
	HabitType      string   `json:"habitType"`
	Unit           string   `json:"unit,omitempty"`
	Days           int      `json:"days"`
	CompletedDays  int      `json:"completedDays"`
	CompletionRate float64  `json:"completionRate"`
	TotalValue     *float64 `json:"totalValue"`
	AverageValue   *float64 `json:"averageValue"`
	Streak         int      `json:"streak"`
}

// handleAnalytics serves per-habit analytics when habitId is given and the
// cross-habit rollup otherwise.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 7)
	if days < 1 {
		days = 7
	}

	if habitID := r.URL.Query().Get("habitId"); habitID != "" {
		s.habitAnalytics(w, r, habitID, days)
		return
	}
	s.globalAnalytics(w, r, days)
}

func (s *Server) habitAnalytics(w http.ResponseWriter, r *http.Request, habitID string, days int) {
	userID, _ := auth.UserID(r.Context())

	h, err := s.db.GetHabit(habitID, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load habit")
		return
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	today := analytics.Today(s.clock)
	start := analytics.AddDays(today, -(days - 1))

	logs, err := s.db.ListLogs(h.ID, start, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load logs")
		return
	}

	// Active days within the window, under the any-activity threshold.
	completedDays := 0
	var totalValue float64
	for _, l := range logs {
		if analytics.IsCompleted(*h, l.Value, analytics.ModeAnyActivity) {
			completedDays++
		}
		if n, ok := l.Value.Num(); ok {
			totalValue += n
		}
	}

	resp := habitAnalyticsResponse{
		HabitID:        h.ID,
		HabitName:      h.Name,
		HabitType:      string(h.Type),
		Unit:           h.Unit,
		Days:           days,
		CompletedDays:  completedDays,
		CompletionRate: float64(completedDays) / float64(days) * 100,
		Streak:         s.habitStreak(*h, today),
	}
	if h.Type == habit.TypeMeasurable {
		resp.TotalValue = &totalValue
		avg := 0.0
		if completedDays > 0 {
			avg = totalValue / float64(completedDays)
		}
		resp.AverageValue = &avg
	}
	writeJSON(w, http.StatusOK, resp)
}

// habitStreak computes the habit's current streak over its full history,
// counting days completed under the any-activity threshold.
func (s *Server) habitStreak(h habit.Habit, today string) int {
	logs, err := s.db.ListLogsDesc(h.ID)
	if err != nil {
		log.Printf("loading logs for streak: %v", err)
		return 0
	}

	var completed []string
	for _, l := range logs {
		if analytics.IsCompleted(h, l.Value, analytics.ModeAnyActivity) {
			completed = append(completed, l.Date)
		}
	}
	return analytics.Streak(completed, today)
}

func (s *Server) globalAnalytics(w http.ResponseWriter, r *http.Request, days int) {
	userID, _ := auth.UserID(r.Context())

	today := analytics.Today(s.clock)
	start := analytics.AddDays(today, -(days - 1))

	totalHabits, err := s.db.CountHabits(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count habits")
		return
	}
	inRange, err := s.db.DistinctUserLogDates(userID, start, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load log dates")
		return
	}
	allDates, err := s.db.DistinctUserLogDates(userID, "", "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load log dates")
		return
	}

	stats := analytics.Global(totalHabits, inRange, allDates, today)
	writeJSON(w, http.StatusOK, map[string]any{
		"totalHabits":      stats.TotalHabits,
		"daysWithProgress": stats.DaysWithProgress,
		"globalStreak":     stats.GlobalStreak,
		"days":             days,
	})
}

// periodsResponse carries the progress-screen payload for one habit.
type periodsResponse struct {
	HabitID      string                 `json:"habitId"`
	Granularity  string                 `json:"granularity"`
	Start        string                 `json:"start"`
	End          string                 `json:"end"`
	Periods      []analytics.PeriodStat `json:"periods"`
	Rollup       analytics.WeeklyRollup `json:"rollup"`
	Summary      analytics.Summary      `json:"summary"`
	Insights     []analytics.Insight    `json:"insights"`
	SuccessRates map[string]int         `json:"successRates"`
	Diagnostics  []analytics.Diagnostic `json:"diagnostics,omitempty"`
}

func (s *Server) handlePeriods(w http.ResponseWriter, r *http.Request) {
	h := s.loadHabit(w, r)
	if h == nil {
		return
	}

	granularity := analytics.GranularityWeek
	if r.URL.Query().Get("granularity") == string(analytics.GranularityMonth) {
		granularity = analytics.GranularityMonth
	}
	months := queryInt(r, "months", 1)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	// Range: the current calendar month plus (months-1) before it.
	now := s.clock.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := analytics.DateKey(firstOfMonth.AddDate(0, -(months - 1), 0))
	end := analytics.DateKey(firstOfMonth.AddDate(0, 1, -1))

	logs, err := s.db.ListLogs(h.ID, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load logs")
		return
	}
	logMap := habit.LogMap(logs)

	periods, diags := analytics.Aggregate(*h, logMap, start, end, granularity)
	for _, d := range diags {
		log.Printf("habit %s: corrupt log on %s: %s", d.HabitID, d.Date, d.Reason)
	}
	summary, _ := analytics.Summarize(*h, logMap, start, end)

	// Success rates look at trailing windows ending today, which may reach
	// outside the period range.
	today := analytics.Today(s.clock)
	trailing, err := s.db.ListLogs(h.ID, analytics.AddDays(today, -29), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load logs")
		return
	}
	trailingMap := habit.LogMap(trailing)

	writeJSON(w, http.StatusOK, periodsResponse{
		HabitID:     h.ID,
		Granularity: string(granularity),
		Start:       start,
		End:         end,
		Periods:     periods,
		Rollup:      analytics.RollupWeeks(periods),
		Summary:     summary,
		Insights:    analytics.Insights(*h, summary),
		SuccessRates: map[string]int{
			"last7":  analytics.SuccessRate(*h, trailingMap, today, 7),
			"last30": analytics.SuccessRate(*h, trailingMap, today, 30),
		},
		Diagnostics: diags,
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
