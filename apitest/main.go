package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

type Departure struct {
	Time          string `json:"time"`
	Date          string `json:"date"`
	Direction     string `json:"direction"`
	ProductAtStop struct {
		CatOutL       string `json:"catOutL"`
		DisplayNumber string `json:"displayNumber"`
	} `json:"ProductAtStop"`
}

type DepartureBoardResponse struct {
	Departures []Departure `json:"Departure"`
}

func main() {
	key := os.Getenv("RESROBOT_API_KEY")
	if key == "" {
		fmt.Println("RESROBOT_API_KEY is not set")
		return
	}

	// Göteborg Brunnsparken
	url := "https://api.resrobot.se/v2.1/departureBoard?id=740015565&format=json&accessId=" + key

	fmt.Println("Fetching Live Departure Data from ResRobot...")

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var res DepartureBoardResponse
	err = json.Unmarshal(body, &res)
	if err != nil {
		fmt.Println("Error decoding JSON:", err)
		return
	}

	fmt.Println("\n--- 🚌 Next Departures: Brunnsparken ---")
	for _, d := range res.Departures {
		fmt.Printf("[%s] %s %s -> %s\n",
			d.Time,
			d.ProductAtStop.CatOutL,
			d.ProductAtStop.DisplayNumber,
			d.Direction)
	}
}
