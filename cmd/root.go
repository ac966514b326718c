package cmd

import (
	"fmt"
	"os"

	"github.com/Markofbear/travel-planner-2025/pkg/config"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
	"github.com/Markofbear/travel-planner-2025/pkg/weather"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "travelplanner",
	Short: "A CLI and TUI trip planner for Swedish public transport",
	Long: `travelplanner queries the ResRobot journey-planner API to look up stops,
plan trips between two stops, and show live departure boards, with current
weather on the side.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClients reads the API keys and builds both clients. A missing key is a
// startup error, reported before any flow is entered.
func newClients() (*resrobot.Client, *weather.Client, error) {
	keys, err := config.LoadKeys()
	if err != nil {
		return nil, nil, err
	}
	return resrobot.NewClient(keys.ResRobot), weather.NewClient(keys.OpenWeather), nil
}
