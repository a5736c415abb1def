package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ingrain/internal/adapters/sqlite"
	"ingrain/internal/config"
	"ingrain/internal/ports"
)

var (
	dbPath string
	store  *sqlite.Store
	repo   ports.ProcedureRepository
)

var rootCmd = &cobra.Command{
	Use:   "ingrain-cli",
	Short: "CLI for spaced-repetition skill training",
	Long: `ingrain-cli manages procedures: ordered steps extracted from free
text, each with a review schedule on a fixed spaced-repetition cadence
(motor or cognitive).

It provides commands to extract steps from text, save procedures, query
the review queue, and mark or delay individual reviews.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		repo = store
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DBPath(), "path to the procedure database")
}

// GetRepo returns the initialized repository
func GetRepo() ports.ProcedureRepository {
	return repo
}
