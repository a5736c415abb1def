package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved procedures with review progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		procedures, err := commands.NewListProceduresCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(procedures) == 0 {
			fmt.Println("No procedures saved.")
			return nil
		}

		for _, p := range procedures {
			fmt.Printf("%s  %q  %s  %d steps  progress %s  created %s\n",
				p.ID, p.Title, p.Algorithm, len(p.Steps), p.Progress(), p.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
