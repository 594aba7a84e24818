package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List detected question columns",
	Long:  "Lists every dataset column treated as a survey question, i.e. not in the configured exclusion set, in source header order.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := newBuilder()

		questions, err := b.Questions()
		if err != nil {
			if reportUserError(err) {
				return nil
			}
			return eris.Wrap(err, "questions: load")
		}

		for i, q := range questions {
			fmt.Printf("Q%d\t%s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}
