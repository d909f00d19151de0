package cmd

import (
	"fmt"
	"os"

	"github.com/fieldscope/research-api/pkg/config"
	"github.com/spf13/cobra"
)

// appConfig holds the loaded configuration, populated by loadConfig
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "research-api",
	Short: "FieldScope Research API server",
	Long: `FieldScope Research API - project management for qualitative market research

This API manages research projects, interview transcripts, and content
analysis documents. Respondents are identified by stable chronological
labels (R01, R02, ...) that stay consistent between the transcript list
and every derived analysis document.

Features:
  • Project and transcript metadata management
  • Chronological respondent numbering with date/time corrections
  • Content analysis documents with synchronized respondent labels
  • Idempotent project-wide reconciliation`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration when a command needs it.
// Commands that talk to the database or start the server call this first.
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	appConfig = cfg

	return nil
}
