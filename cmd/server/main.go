package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukikurage/taskmaster-api/internal/config"
	"github.com/yukikurage/taskmaster-api/internal/logger"
)

var cfg *config.Config

// rootCmd represents the base command; without a subcommand it serves the API
var rootCmd = &cobra.Command{
	Use:   "taskmaster",
	Short: "Taskmaster retail task management API",
	Long: `Taskmaster serves the store task board, team roster, shift schedules
and manager insights over a JSON HTTP API.

Run without arguments to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.GinMode)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
