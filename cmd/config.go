package cmd

import (
	"fmt"

	"github.com/Markofbear/travel-planner-2025/pkg/config"
	"github.com/Markofbear/travel-planner-2025/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage travelplanner configuration",
	Long:  "View or edit your local configuration settings (home stop, weather city, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		transitClient, weatherClient, err := newClients()
		if err != nil {
			return err
		}

		setHome, _ := cmd.Flags().GetString("set-home")
		if setHome != "" {
			fmt.Printf("Searching ResRobot for stop: '%s'...\n", setHome)

			match, err := resolveStop(transitClient, setHome)
			if err != nil {
				return err
			}

			cfg.HomeStopName = match.Name
			cfg.HomeStopID = match.ID

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Home stop successfully saved as: %s (ID: %s)\n", match.Name, match.ID)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		app := &tui.App{Transit: transitClient, Weather: weatherClient}
		return app.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-home", "s", "", "Set your home stop for departure boards")
}
