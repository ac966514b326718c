package cmd

import (
	"fmt"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/board"
	"github.com/Markofbear/travel-planner-2025/pkg/config"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var departuresCmd = &cobra.Command{
	Use:   "departures",
	Short: "Show the live departure board for a stop",
	Long:  "Fetches the ResRobot departure board for a stop and shows everything leaving within the horizon, annotated with minutes until departure.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stopName, _ := cmd.Flags().GetString("stop")
		horizon, _ := cmd.Flags().GetInt("horizon")
		sortRows, _ := cmd.Flags().GetBool("sort")
		arrivals, _ := cmd.Flags().GetBool("arrivals")

		client, _, err := newClients()
		if err != nil {
			return err
		}

		stop, err := resolveBoardStopCLI(client, stopName)
		if err != nil {
			return err
		}

		if arrivals {
			return printArrivals(client, stop)
		}

		var raw []resrobot.Departure
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching live departures for %s...", stop.Name)).
			Action(func() {
				raw, fetchErr = client.DepartureBoard(stop.ID)
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		departures := board.Filter(raw, time.Now(), horizon)
		if sortRows {
			departures = board.SortByMinutes(departures)
		}

		fmt.Printf("\n--- 🚏 Avgångar: %s ---\n", stop.Name)

		if len(departures) == 0 {
			fmt.Printf("No upcoming departures found in the next %d minutes.\n", horizon)
			return nil
		}

		fmt.Printf("%-4s %-8s %-30s %s\n", "Typ", "Linje", "Destination", "Nästa (min)")
		for _, d := range departures {
			fmt.Printf("%-4s %-8s %-30s %d\n", board.Icon(d.Transport), d.Line, d.Direction, d.MinutesToDeparture)
		}

		return nil
	},
}

func printArrivals(client *resrobot.Client, stop resrobot.StopCandidate) error {
	var raw []resrobot.Arrival
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching live arrivals for %s...", stop.Name)).
		Action(func() {
			raw, fetchErr = client.ArrivalBoard(stop.ID)
		}).
		Run()

	if fetchErr != nil {
		return fetchErr
	}

	fmt.Printf("\n--- 🚏 Ankomster: %s ---\n", stop.Name)

	if len(raw) == 0 {
		fmt.Println("No upcoming arrivals found.")
		return nil
	}

	fmt.Printf("%-10s %-30s %s\n", "Tid", "Från", "Linje")
	for _, a := range raw {
		line := ""
		if a.ProductAtStop != nil {
			line = a.ProductAtStop.DisplayNumber
		}
		fmt.Printf("%-10s %-30s %s\n", a.Time, a.Origin, line)
	}

	return nil
}

// resolveBoardStopCLI falls back to the saved home stop when no name is given
func resolveBoardStopCLI(client *resrobot.Client, stopName string) (resrobot.StopCandidate, error) {
	if stopName == "" {
		cfg, err := config.Load()
		if err != nil || cfg.HomeStopID == "" {
			return resrobot.StopCandidate{}, fmt.Errorf("no stop given and no home stop configured. Use --stop or run 'travelplanner config --set-home \"Your Stop\"' first")
		}
		return resrobot.StopCandidate{Name: cfg.HomeStopName, ID: cfg.HomeStopID}, nil
	}
	return resolveStop(client, stopName)
}

func init() {
	rootCmd.AddCommand(departuresCmd)
	departuresCmd.Flags().StringP("stop", "s", "", "Stop name (free text); defaults to your saved home stop")
	departuresCmd.Flags().Int("horizon", board.DefaultHorizonMinutes, "Look-ahead window in minutes")
	departuresCmd.Flags().Bool("sort", false, "Sort by minutes to departure instead of upstream order")
	departuresCmd.Flags().BoolP("arrivals", "r", false, "Show the arrival board instead")
}
