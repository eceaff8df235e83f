package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanmoss/tally/internal/config"
	"github.com/evanmoss/tally/internal/habit"
	"github.com/evanmoss/tally/internal/output"
	"github.com/evanmoss/tally/internal/store"
)

var (
	habitsEmail    string
	habitsArchived bool
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "List habits and their schedules",
	RunE:  runHabits,
}

func init() {
	habitsCmd.Flags().StringVar(&habitsEmail, "email", "", "Account email (default: first account)")
	habitsCmd.Flags().BoolVar(&habitsArchived, "archived", false, "Include archived habits")
	rootCmd.AddCommand(habitsCmd)
}

// resolveUser picks the account CLI commands operate on.
func resolveUser(db *store.DB, email string) (*store.User, error) {
	if email != "" {
		u, err := db.GetUserByEmail(email)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("no account with email %s", email)
		}
		return u, nil
	}
	u, err := db.FirstUser()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("no accounts yet; run 'tally init --email you@example.com --password ...'")
	}
	return u, nil
}

func runHabits(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg.Output.Color)

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	u, err := resolveUser(db, habitsEmail)
	if err != nil {
		return err
	}

	habits, err := db.ListHabits(u.ID, habitsArchived)
	if err != nil {
		return fmt.Errorf("listing habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Habits  (%s)", u.Email)))
	fmt.Println()

	tbl := output.NewTable("Name", "Type", "Target", "Schedule", "Status")
	for _, h := range habits {
		tbl.AddRow(h.Name, string(h.Type), habitTarget(h), habitSchedule(h), habitStatus(h))
	}
	tbl.Print()
	return nil
}

func habitTarget(h habit.Habit) string {
	if h.Type != habit.TypeMeasurable {
		return "-"
	}
	return fmt.Sprintf("%g %s/day", h.Target, h.Unit)
}

func habitSchedule(h habit.Habit) string {
	if rdw := h.RequiredDaysPerWeek(); rdw < 7 {
		return fmt.Sprintf("%d days/week", rdw)
	}
	return "daily"
}

func habitStatus(h habit.Habit) string {
	if h.Archived {
		return output.StyleMuted.Render("archived")
	}
	return output.StyleSuccess.Render("active")
}
