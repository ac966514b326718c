package cmd

import (
	"fmt"
	"strings"

	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var stopsCmd = &cobra.Command{
	Use:   "stops <query>",
	Short: "Search for stops by name",
	Long:  "Looks up stops by free text via the ResRobot fuzzy location search and prints their IDs and coordinates. The IDs feed into 'trip' and 'departures'.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		client, _, err := newClients()
		if err != nil {
			return err
		}

		var candidates []resrobot.StopCandidate
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Searching stops matching '%s'...", query)).
			Action(func() {
				candidates, fetchErr = client.LookupStop(query)
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		if len(candidates) == 0 {
			fmt.Printf("No stops found for '%s'.\n", query)
			return nil
		}

		fmt.Printf("%-50s %-12s %s\n", "Name", "extId", "Coordinates")
		for _, c := range candidates {
			fmt.Printf("%-50s %-12s %.4f, %.4f\n", c.Name, c.ID, c.Lat, c.Lon)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopsCmd)
}
