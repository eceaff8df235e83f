package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanmoss/tally/internal/analytics"
	"github.com/evanmoss/tally/internal/config"
	"github.com/evanmoss/tally/internal/habit"
	"github.com/evanmoss/tally/internal/output"
	"github.com/evanmoss/tally/internal/store"
)

var (
	statsEmail string
	statsDays  int
	statsHabit string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, completion rates, and insights",
	Long: `Show progress analytics for your habits: current streaks, trailing
completion rates, and weekly target attainment. Name a habit with --habit
for a detailed breakdown with insights.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsEmail, "email", "", "Account email (default: first account)")
	statsCmd.Flags().IntVar(&statsDays, "days", 30, "Trailing window in days")
	statsCmd.Flags().StringVar(&statsHabit, "habit", "", "Show a detailed breakdown for one habit")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg.Output.Color)

	if statsDays < 1 {
		statsDays = 30
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	u, err := resolveUser(db, statsEmail)
	if err != nil {
		return err
	}

	habits, err := db.ListHabits(u.ID, false)
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	today := analytics.Today(nil)
	start := analytics.AddDays(today, -(statsDays - 1))

	if statsHabit != "" {
		for _, h := range habits {
			if h.Name == statsHabit {
				return renderHabitDetail(db, h, start, today)
			}
		}
		return fmt.Errorf("no habit named %q", statsHabit)
	}

	fmt.Println(output.Section(fmt.Sprintf("Stats  (last %d days)", statsDays)))
	fmt.Println()

	tbl := output.NewTable("Habit", "Streak", "Success 7d", "Success 30d", "Trend")
	for _, h := range habits {
		logs, err := db.ListLogs(h.ID, start, today)
		if err != nil {
			return fmt.Errorf("loading logs for %s: %w", h.Name, err)
		}
		logMap := habit.LogMap(logs)

		tbl.AddRow(
			h.Name,
			output.Streak(currentStreak(db, h, today)),
			output.PercentBar(float64(analytics.SuccessRate(h, logMap, today, 7)), 10),
			output.PercentBar(float64(analytics.SuccessRate(h, logMap, today, 30)), 10),
			weekTrend(h, logMap, start, today),
		)
	}
	tbl.Print()

	return renderGlobal(db, u.ID, start, today)
}

// currentStreak walks the habit's full history, not just the stats window,
// so long streaks are not clipped.
func currentStreak(db *store.DB, h habit.Habit, today string) int {
	logs, err := db.ListLogsDesc(h.ID)
	if err != nil {
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

// weekTrend compares the latest two full weekly buckets in the window.
func weekTrend(h habit.Habit, logs map[string]habit.LogValue, start, today string) string {
	periods, _ := analytics.Aggregate(h, logs, start, today, analytics.GranularityWeek)
	if len(periods) < 2 {
		return output.StyleMuted.Render("─")
	}
	last := periods[len(periods)-1]
	prev := periods[len(periods)-2]
	return output.TrendArrow(float64(last.Percentage - prev.Percentage))
}

func renderHabitDetail(db *store.DB, h habit.Habit, start, today string) error {
	logs, err := db.ListLogs(h.ID, start, today)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}
	logMap := habit.LogMap(logs)

	fmt.Println(output.Section(h.Name))
	fmt.Println()

	summary, diags := analytics.Summarize(h, logMap, start, today)
	for _, d := range diags {
		fmt.Println(output.StyleWarning.Render(
			fmt.Sprintf("  corrupt log on %s: %s", d.Date, d.Reason)))
	}

	fmt.Printf("  Streak        %s\n", output.Streak(currentStreak(db, h, today)))
	fmt.Printf("  Success 7d    %s\n", output.PercentBar(float64(analytics.SuccessRate(h, logMap, today, 7)), 20))
	fmt.Printf("  Success 30d   %s\n", output.PercentBar(float64(analytics.SuccessRate(h, logMap, today, 30)), 20))
	fmt.Printf("  Active days   %s\n", output.StyleBold.Render(fmt.Sprintf("%d of %d", summary.ActiveDays, summary.RangeDays)))
	if h.Type == habit.TypeMeasurable {
		fmt.Printf("  Total         %s\n", output.StyleBold.Render(fmt.Sprintf("%.1f %s", summary.TotalValue, h.Unit)))
		fmt.Printf("  Daily average %s\n", output.StyleBold.Render(fmt.Sprintf("%.1f %s", summary.AverageValue, h.Unit)))
	}
	fmt.Println()

	periods, _ := analytics.Aggregate(h, logMap, start, today, analytics.GranularityWeek)
	tbl := output.NewTable("Week", "Done", "Required", "Progress", "Met")
	for _, p := range periods {
		met := output.StyleError.Render("✗")
		if p.IsSuccess {
			met = output.StyleSuccess.Render("✓")
		}
		tbl.AddRow(
			p.Label,
			fmt.Sprintf("%d", p.CompletedDays),
			fmt.Sprintf("%d", p.RequiredDays),
			output.PercentBar(float64(p.Percentage), 10),
			met,
		)
	}
	tbl.Print()
	fmt.Println()

	rollup := analytics.RollupWeeks(periods)
	fmt.Printf("  Weeks on target: %d of %d (%d%%)\n", rollup.WeeksDone, rollup.TotalWeeks, rollup.SuccessRate)

	for _, in := range analytics.Insights(h, summary) {
		fmt.Printf("  %s %s\n", in.Icon, in.Message)
	}
	return nil
}

func renderGlobal(db *store.DB, userID, start, today string) error {
	totalHabits, err := db.CountHabits(userID)
	if err != nil {
		return fmt.Errorf("counting habits: %w", err)
	}
	inRange, err := db.DistinctUserLogDates(userID, start, today)
	if err != nil {
		return fmt.Errorf("loading log dates: %w", err)
	}
	allDates, err := db.DistinctUserLogDates(userID, "", "")
	if err != nil {
		return fmt.Errorf("loading log dates: %w", err)
	}

	g := analytics.Global(totalHabits, inRange, allDates, today)
	fmt.Println()
	fmt.Printf("  %d habits, %d days with progress, overall streak %s\n",
		g.TotalHabits, g.DaysWithProgress, output.Streak(g.GlobalStreak))
	return nil
}
