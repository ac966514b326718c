package cmd

import (
	"fmt"

	"github.com/Markofbear/travel-planner-2025/pkg/config"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show the current weather for a city",
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")

		if city == "" {
			cfg, err := config.Load()
			if err != nil || cfg.WeatherCity == "" {
				return fmt.Errorf("no city given and none configured. Use --city or set one in the settings")
			}
			city = cfg.WeatherCity
		}

		_, weatherClient, err := newClients()
		if err != nil {
			return err
		}

		w, err := weatherClient.Current(city)
		if err != nil {
			// Weather is presentational; show a friendly message instead of a stack of wrapping
			fmt.Printf("Kunde inte hämta vädret för %s.\n", city)
			return nil
		}

		titler := cases.Title(language.Swedish)

		fmt.Printf("\n--- ⛅ Vädret i %s, %s ---\n", w.Name, w.Sys.Country)
		fmt.Printf("🌡️  %.1f°C\n", w.Main.Temp)
		fmt.Printf("💨 %.1f m/s\n", w.Wind.Speed)
		fmt.Printf("☁️  %s\n", titler.String(w.Description()))
		fmt.Printf("💧 %d%%\n", w.Main.Humidity)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
	weatherCmd.Flags().StringP("city", "c", "", "City name, e.g. Göteborg")
}
