package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pawquiz/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		qs, err := loadQuestions(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Source: %s\n", questionsSource(cfg))
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for i, q := range qs {
			fmt.Fprintf(out, "[%d] %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				mark := " "
				if j == q.CorrectIndex {
					mark = "*"
				}
				fmt.Fprintf(out, "   %s %d) %s\n", mark, j+1, opt)
			}
		}
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := questions.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions)\n", args[0], len(qs))
		return nil
	},
}

func init() {
	questionsCmd.AddCommand(questionsValidateCmd)
}
