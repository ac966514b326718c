package weather

// Current represents the OpenWeatherMap current-conditions response
type Current struct {
	Name       string      `json:"name"`
	Sys        Sys         `json:"sys"`
	Main       Main        `json:"main"`
	Wind       Wind        `json:"wind"`
	Conditions []Condition `json:"weather"`
}

type Sys struct {
	Country string `json:"country"`
}

type Main struct {
	Temp     float64 `json:"temp"` // °C with units=metric
	Humidity int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"` // m/s with units=metric
}

type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"` // e.g. "04d"
}

// Description returns the text of the primary condition, if any
func (c *Current) Description() string {
	if len(c.Conditions) == 0 {
		return ""
	}
	return c.Conditions[0].Description
}

// IconURL returns the OpenWeatherMap icon image for the primary condition
func (c *Current) IconURL() string {
	if len(c.Conditions) == 0 {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + c.Conditions[0].Icon + "@2x.png"
}
