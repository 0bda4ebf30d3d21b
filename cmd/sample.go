package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdeck/internal/importer"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load the built-in sample question bank",
	Long:  "Sample replaces the whole question bank with a small built-in set, useful for trying the app before importing real data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		qs := importer.SampleQuestions()
		if err := svc.ImportQuestions(qs); err != nil {
			return fmt.Errorf("import sample questions: %w", err)
		}
		fmt.Printf("Loaded %d sample questions.\n", len(qs))
		return nil
	},
}
