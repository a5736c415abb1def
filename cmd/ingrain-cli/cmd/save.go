package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
)

var (
	saveTitle     string
	saveAlgorithm string
	saveStartDate string
	saveExtract   bool
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Save a procedure and materialize its review schedule",
	Long: `Save stores a procedure read from a file, or from stdin when no file
is given. By default each non-empty input line is one step; with
--extract the input is free text and steps are extracted from it.

The review schedule starts on --start-date (default today); the first
review lands on the start date itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}

		var steps []string
		if saveExtract {
			result, err := commands.NewExtractCommand(content, "").Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, step := range result.Steps {
				steps = append(steps, step.Description)
			}
		} else {
			for _, line := range strings.Split(content, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					steps = append(steps, line)
				}
			}
		}

		save := commands.NewSaveCommand(GetRepo(), saveTitle, steps, saveAlgorithm)
		if saveStartDate != "" {
			date, err := domain.ParseDate(saveStartDate)
			if err != nil {
				return err
			}
			save.StartDate = date
		}

		result, err := save.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("id: %s\n", result.Procedure.ID)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveTitle, "title", "t", "", "procedure title (required)")
	saveCmd.Flags().StringVarP(&saveAlgorithm, "algorithm", "a", "", "review cadence: motor or cognitive (required)")
	saveCmd.Flags().StringVar(&saveStartDate, "start-date", "", "schedule start date (YYYY-MM-DD, default today)")
	saveCmd.Flags().BoolVar(&saveExtract, "extract", false, "treat input as free text and extract steps from it")
	saveCmd.MarkFlagRequired("title")
	saveCmd.MarkFlagRequired("algorithm")
	rootCmd.AddCommand(saveCmd)
}
