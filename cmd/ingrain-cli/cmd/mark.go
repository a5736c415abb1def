package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
)

var markCmd = &cobra.Command{
	Use:   "mark <procedure-id> <review-index>",
	Short: "Mark a review event completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid review index %q", args[1])
		}

		result, err := commands.NewMarkReviewedCommand(GetRepo(), args[0], index).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
}
