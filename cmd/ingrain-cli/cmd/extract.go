package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
)

var extractPrompt string

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract ordered steps from free text",
	Long: `Extract runs the heuristic text-to-steps pipeline on a file, or on
stdin when no file is given. The result is printed one numbered step
per line; nothing is stored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}

		result, err := commands.NewExtractCommand(content, extractPrompt).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if result.Count == 0 {
			fmt.Println("No steps extracted.")
			return nil
		}
		for _, step := range result.Steps {
			fmt.Printf("%d. %s\n", step.Order, step.Description)
		}
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	extractCmd.Flags().StringVar(&extractPrompt, "prompt", "", "refinement prompt (accepted, reserved for a future refinement stage)")
	rootCmd.AddCommand(extractCmd)
}
