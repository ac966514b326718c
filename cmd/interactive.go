package cmd

import (
	"github.com/Markofbear/travel-planner-2025/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to search stops, plan trips, and browse departure boards interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transitClient, weatherClient, err := newClients()
		if err != nil {
			return err
		}

		app := &tui.App{Transit: transitClient, Weather: weatherClient}
		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
