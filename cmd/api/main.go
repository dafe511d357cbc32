package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/missiontracker/core/cmd/api/commands"
)

// @title Mission Tracker API
// @version 1.0
// @description Personal mission tracking for a small fixed set of users: long-term missions, their daily missions and a today dashboard.

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /auth/login.

// @securityDefinitions.apikey IdentityHeader
// @in header
// @name X-Current-User
// @description Username of the caller. Accepted only when header identity is enabled.

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "missiontracker",
		Short: "Mission Tracker API Server",
		Long:  `Mission Tracker keeps long-term missions and the daily missions that move them forward, and shows what is due today.`,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file (default: ./config.yaml or ./config/config.yaml)")

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand(&configPath))
	rootCmd.AddCommand(commands.NewMigrateCommand(&configPath))
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
