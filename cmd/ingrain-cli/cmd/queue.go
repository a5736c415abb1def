package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
)

var queueCmd = &cobra.Command{
	Use:   "queue [date]",
	Short: "List the reviews due on a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := domain.Today().String()
		if len(args) == 1 {
			date = args[0]
		}

		result, err := commands.NewQueueCommand(GetRepo(), date).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(result.Items) == 0 {
			fmt.Printf("Nothing due on %s.\n", result.Date)
			return nil
		}

		fmt.Printf("%d reviews due on %s:\n", len(result.Items), result.Date)
		for _, item := range result.Items {
			fmt.Printf("  %s  review %d  %q  (%s, %d steps)  %s\n",
				item.ProcedureID, item.ReviewIndex, item.Title, item.Algorithm, item.StepCount, item.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queueCmd)
}
