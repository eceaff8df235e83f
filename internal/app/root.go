// Package app contains the Cobra command tree for tally.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanmoss/tally/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Habit tracking with streaks, targets, and progress analytics",
	Long: `tally tracks daily habits, boolean or measurable, against per-habit
targets and schedules. It stores everything in a local SQLite database,
serves a JSON API for web clients, and renders progress analytics in the
terminal.

Run 'tally' with no arguments to see the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tally", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  init      Create the database and a first account")
		fmt.Println("  serve     Run the HTTP API server")
		fmt.Println("  habits    List habits and their schedules")
		fmt.Println("  stats     Show streaks, completion rates, and insights")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupOutput applies the color preference from flags, config, and the
// terminal before any rendering happens.
func setupOutput(configColor bool) {
	if flagNoColor || !configColor || !output.StdoutIsTerminal() {
		output.SetNoColor(true)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}
