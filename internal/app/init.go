package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/config"
	"github.com/evanmoss/tally/internal/store"
)

var (
	initEmail    string
	initPassword string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and a first account",
	Long: `Create the tally database, run schema migrations, and optionally
register a first account so the API is usable immediately.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initEmail, "email", "", "Email for the first account")
	initCmd.Flags().StringVar(&initPassword, "password", "", "Password for the first account")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	fmt.Println("database ready:", cfg.DatabasePath)

	if initEmail == "" {
		return nil
	}
	if len(initPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := db.GetUserByEmail(initEmail)
	if err != nil {
		return fmt.Errorf("checking account: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("account %s already exists", initEmail)
	}

	hash, err := auth.HashPassword(initPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u := store.User{
		ID:           uuid.NewString(),
		Email:        initEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.CreateUser(u); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	fmt.Println("account created:", initEmail)
	return nil
}
