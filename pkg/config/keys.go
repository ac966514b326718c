package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingKey marks an absent API key. Both keys are required before any
// UI is shown; a missing key is a startup failure, not a per-request one.
var ErrMissingKey = errors.New("missing API key")

// Keys holds the API credentials read once at startup
type Keys struct {
	ResRobot    string
	OpenWeather string
}

// LoadKeys reads the two API keys from the environment, after loading a
// .env file if one exists in the working directory.
func LoadKeys() (*Keys, error) {
	// A missing .env is fine; the variables may come from the real environment
	_ = godotenv.Load()

	keys := &Keys{
		ResRobot:    os.Getenv("RESROBOT_API_KEY"),
		OpenWeather: os.Getenv("OPENWEATHER_API_KEY"),
	}

	if keys.ResRobot == "" {
		return nil, fmt.Errorf("%w: RESROBOT_API_KEY is not set", ErrMissingKey)
	}
	if keys.OpenWeather == "" {
		return nil, fmt.Errorf("%w: OPENWEATHER_API_KEY is not set", ErrMissingKey)
	}

	return keys, nil
}
