package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdeck/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import a question bank from an Excel workbook",
	Long: `Import replaces the whole question bank with the rows of the first
sheet of the workbook. Rows missing a prompt or a correct answer are
skipped silently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := importer.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("parse workbook: %w", err)
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.ImportQuestions(qs); err != nil {
			return fmt.Errorf("import questions: %w", err)
		}
		fmt.Printf("Imported %d questions.\n", len(qs))
		return nil
	},
}
