// Package cmd implements the paycheck commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/envelope-zero/paycheck/internal/config"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:          "paycheck",
	Short:        "Split every paycheck into savings for your goals",
	Long:         "paycheck recommends how much of each paycheck to put towards every savings goal, weighted by priority and deadline.",
	RunE:         runServe,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", fmt.Sprintf("TOML config file, defaults to $%s", config.EnvConfigPath))
}

// loadConfig loads the configuration and sets up gin and logging with it.
func loadConfig(output io.Writer) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	setupLogging(cfg, output)
	return cfg, nil
}

func setupLogging(cfg config.Config, output io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connectDatabase connects to PostgreSQL if a host is configured and to
// the SQLite database file otherwise.
func connectDatabase(cfg config.DatabaseConfig) error {
	if cfg.Postgres() {
		return models.ConnectPostgres(cfg.DSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.Path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(cfg.Path)
}
