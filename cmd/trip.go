package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/exporter"
	"github.com/Markofbear/travel-planner-2025/pkg/planner"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Plan a trip between two stops",
	Long:  "Resolves both stop names via the ResRobot lookup API, plans journeys between them, and prints the stop table of the best match.",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		via, _ := cmd.Flags().GetString("via")
		within, _ := cmd.Flags().GetInt("within")
		showAll, _ := cmd.Flags().GetBool("all")
		exportPath, _ := cmd.Flags().GetString("export")

		if from == "" || to == "" {
			return fmt.Errorf("must specify both --from and --to")
		}

		client, _, err := newClients()
		if err != nil {
			return err
		}

		origin, err := resolveStop(client, from)
		if err != nil {
			return err
		}
		destination, err := resolveStop(client, to)
		if err != nil {
			return err
		}

		var journeys []planner.Journey
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Planning trip %s -> %s...", origin.Name, destination.Name)).
			Action(func() {
				journeys, fetchErr = planner.New(client).Plan(origin.ID, destination.ID)
			}).
			Run()

		if fetchErr != nil {
			return fetchErr
		}

		if via != "" {
			journeys = planner.MatchingStop(journeys, via)
		}
		if within > 0 {
			journeys = planner.DepartingWithin(journeys, time.Now(), within)
		}

		if len(journeys) == 0 {
			fmt.Println("No journeys found. Try widening the time window or checking the stop names.")
			return nil
		}

		if !showAll {
			// All matches come back in upstream order; the "take first"
			// decision lives here at the call site
			journeys = journeys[:1]
		}

		for i, journey := range journeys {
			printJourney(i+1, journey)
		}

		if exportPath != "" {
			file, err := os.Create(exportPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()

			if err := exporter.GenerateICS(journeys[0], file); err != nil {
				return fmt.Errorf("failed to generate ICS: %w", err)
			}
			fmt.Printf("✨ Successfully exported journey to: %s\n", exportPath)
		}

		return nil
	},
}

// resolveStop takes the best lookup match for a free-text stop name
func resolveStop(client *resrobot.Client, query string) (resrobot.StopCandidate, error) {
	candidates, err := client.LookupStop(query)
	if err != nil {
		return resrobot.StopCandidate{}, fmt.Errorf("could not look up '%s': %w", query, err)
	}
	if len(candidates) == 0 {
		return resrobot.StopCandidate{}, fmt.Errorf("no stops found matching '%s'", query)
	}
	return candidates[0], nil
}

func printJourney(index int, journey planner.Journey) {
	fmt.Printf("\n--- 🧭 Resa %d: %d byten, %d stopp på vägen ---\n", index, journey.TransferCount(), journey.StopCount())

	now := time.Now()
	fmt.Printf("%-40s %-10s %-10s %-22s %s\n", "Namn", "Avgång", "Ankomst", "Linje", "Tid kvar (min)")

	for _, stop := range journey.Stops() {
		remaining := ""
		if instant, ok := stop.DepartureInstant(); ok {
			minutes := planner.MinutesUntil(instant, now)
			if minutes < 0 {
				minutes = 0 // Display only
			}
			remaining = fmt.Sprintf("%d", minutes)
		}

		fmt.Printf("%-40s %-10s %-10s %-22s %s\n", stop.Name, stop.DepTime, stop.ArrTime, stop.LegLabel, remaining)
	}
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.Flags().StringP("from", "f", "", "Origin stop name (free text)")
	tripCmd.Flags().StringP("to", "t", "", "Destination stop name (free text)")
	tripCmd.Flags().String("via", "", "Only show journeys passing a stop matching this text")
	tripCmd.Flags().Int("within", 0, "Only show journeys departing within this many minutes")
	tripCmd.Flags().BoolP("all", "a", false, "Show all journeys instead of just the first")
	tripCmd.Flags().StringP("export", "e", "", "Export the first journey to an .ics calendar file")
}
