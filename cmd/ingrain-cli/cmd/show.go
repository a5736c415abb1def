package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <procedure-id>",
	Short: "Show a procedure's steps and review schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := commands.NewGetProcedureCommand(GetRepo(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s  %q  %s  created %s  progress %s\n\n",
			p.ID, p.Title, p.Algorithm, p.CreatedAt.Format("2006-01-02"), p.Progress())

		fmt.Println("Steps:")
		for _, step := range p.Steps {
			fmt.Printf("  %d. %s\n", step.Order, step.Description)
		}

		fmt.Println("\nReview schedule:")
		for i, ev := range p.ReviewSchedule {
			status := " "
			if ev.Completed {
				status = "x"
			}
			fmt.Printf("  [%s] %d  %s  %s\n", status, i, ev.Date, ev.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
