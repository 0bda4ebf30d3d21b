package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		term, _ := cmd.Flags().GetString("search")

		matches := svc.Bank().Search(term)
		if len(matches) == 0 {
			fmt.Println("No questions match.")
			return nil
		}

		for _, q := range matches {
			fmt.Printf("%s  [%s]  %s\n", q.ID, q.Theme, q.Prompt)
			for i, opt := range q.Options {
				marker := " "
				if opt == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("    %s %c) %s\n", marker, 'A'+i, opt)
			}
		}
		fmt.Printf("\n%d questions", len(matches))
		if term != "" {
			fmt.Printf(" matching %q", strings.TrimSpace(term))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("search", "", "Filter by prompt or theme substring")
}
