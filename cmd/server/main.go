package main

import (
	"context"
	"fmt"
	"os"

	"guardia/internal/config"
	"guardia/internal/database"
	"guardia/internal/logger"
	"guardia/internal/repository"
	"guardia/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Guardia API
// @version         1.0
// @description     Shift scheduling (cumplidos), absences and incident reports for security guard companies.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http https

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "guardia",
	Short:         "Guard operations API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log, err = logger.New(cfg.LogLevel, cfg.LogDevelopment)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.Migrate(cfg.MigrateURL(), database.Direction(args[0]), log)
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the first admin user and the default catalogs",
	Long: `Creates an admin user with the given email unless one already exists,
then inserts the default shift, absence and novedad types that are missing.
Running it again is safe.

Example:
  guardia seed-admin --email admin@example.com --name "Admin" --password 's3cret-pass'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}

		db, err := database.Open(cfg, log)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		ctx := cmd.Context()
		if _, err := database.SeedAdmin(ctx, repository.NewUsuarioRepository(db), email, name, password, log); err != nil {
			return err
		}
		return database.SeedCatalogs(ctx, db, log)
	},
}

func runServe(ctx context.Context) error {
	s, err := server.Init(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("server initialization failed: %w", err)
	}
	return s.Run()
}

func init() {
	seedAdminCmd.Flags().String("email", "", "admin email (required)")
	seedAdminCmd.Flags().String("name", "Administrador", "admin display name")
	seedAdminCmd.Flags().String("password", "", "admin password, falls back to $ADMIN_PASSWORD")
	_ = seedAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedAdminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
