package cmd

import (
	"fmt"
	"os"

	"github.com/fieldscope/research-api/internal/database"
	"github.com/fieldscope/research-api/internal/models"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Bring the FieldScope Research API database schema up to date.

This command connects to the configured database and applies any pending
schema changes for projects, transcripts, and content analyses.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Printf("Would migrate database at %s with models:\n", appConfig.Database.Path)
		for _, model := range models.All() {
			fmt.Printf("  %T\n", model)
		}
		return nil
	}

	db, err := database.Initialize(appConfig.Database.Path, appConfig.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing database: %v\n", err)
		}
	}()

	fmt.Printf("Migrating database at %s\n", appConfig.Database.Path)
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
