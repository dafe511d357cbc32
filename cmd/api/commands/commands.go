package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/missiontracker/core/internal/adapters/credentials"
	"github.com/missiontracker/core/internal/infrastructure/config"
	"github.com/missiontracker/core/internal/infrastructure/database"
	"github.com/missiontracker/core/internal/infrastructure/logger"
	"github.com/missiontracker/core/internal/infrastructure/server"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// NewServeCommand creates the serve command
func NewServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Mission Tracker API server",
		Long:  "Start the Mission Tracker API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer(*configPath)
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand(configPath *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			withDatabase(*configPath, func(db *database.DB) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				fmt.Println("Migration up completed successfully")
				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			withDatabase(*configPath, func(db *database.DB) error {
				if err := database.MigrateDown(db); err != nil {
					return err
				}
				fmt.Println("Migration down completed successfully")
				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			withDatabase(*configPath, func(db *database.DB) error {
				version, dirty, err := database.MigrationVersion(db)
				if err != nil {
					return err
				}
				fmt.Printf("Current migration version: %d\n", version)
				fmt.Printf("Dirty: %t\n", dirty)
				return nil
			})
		},
	})

	return migrateCmd
}

// NewAccountsCommand creates the account helper command
func NewAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account table helpers",
		Long:  "Helpers for maintaining the auth.accounts table in the configuration",
	}

	accountsCmd.AddCommand(&cobra.Command{
		Use:   "hash <secret>",
		Short: "Print a bcrypt hash usable as an account secret",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hashed, err := credentials.HashSecret(args[0])
			if err != nil {
				log.Fatalf("Failed to hash secret: %v", err)
			}
			fmt.Println(hashed)
		},
	})

	return accountsCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Mission Tracker version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Mission Tracker %s\n", Version)
		},
	}
}

func runServer(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	db, err := database.New(cfg.Database)
	if err != nil {
		appLogger.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			appLogger.Fatalw("Failed to run migrations", "error", err)
		}
	}

	srv, err := server.New(cfg, db, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	appLogger.Infow("Starting Mission Tracker API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"database", cfg.Database.Driver,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Errorw("Server failed", "error", err)
		}
		return
	case sig := <-quit:
		appLogger.Infow("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("Graceful shutdown failed", "error", err)
	}
}

func withDatabase(configPath string, fn func(*database.DB) error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := fn(db); err != nil {
		db.Close()
		log.Fatalf("%v", err)
	}
}
