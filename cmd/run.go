package cmd

import (
	"github.com/spf13/cobra"

	"quizdeck/internal/app"
)

// runApp opens the store, loads the application state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{Service: svc})
}
