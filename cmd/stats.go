package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print lifetime test statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		o := svc.Overall()
		if o.TestCount == 0 {
			fmt.Println("No finished tests yet.")
			return nil
		}

		fmt.Printf("Tests taken:        %d\n", o.TestCount)
		fmt.Printf("Questions answered: %d\n", o.QuestionCount)
		fmt.Printf("Correct:            %d\n", o.CorrectCount)
		fmt.Printf("Average score:      %d%%\n", o.AverageScorePercent)
		fmt.Println()
		fmt.Println("By theme:")

		names := make([]string, 0, len(o.PerTheme))
		for name := range o.PerTheme {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ts := o.PerTheme[name]
			fmt.Printf("  %-24s %4d/%-4d %3d%%\n", name, ts.Correct, ts.Total, ts.Percent)
		}
		return nil
	},
}
