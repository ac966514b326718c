package resrobot

// TripResponse represents the object returned by /trip
type TripResponse struct {
	Trips []Trip `json:"Trip"`
}

// Trip is one complete origin-to-destination option, potentially with transfers
type Trip struct {
	LegList LegList `json:"LegList"`
}

// LegList wraps the leg array the way ResRobot nests it
type LegList struct {
	Legs []Leg `json:"Leg"`
}

// Leg is a single continuous part of a trip (e.g., one bus ride)
type Leg struct {
	Name  string `json:"name"` // e.g. "Länstrafik - Buss 55"
	Type  string `json:"type"`
	Stops *Stops `json:"Stops,omitempty"` // missing for walking legs
}

// Stops wraps the stop array of a leg
type Stops struct {
	Stops []Stop `json:"Stop"`
}

// Stop is one scheduled stop along a leg. Times and dates are local strings;
// the first stop of a leg has no arrival and the last has no departure.
type Stop struct {
	Name    string  `json:"name"`
	ExtID   string  `json:"extId"`
	Lon     float64 `json:"lon"`
	Lat     float64 `json:"lat"`
	DepTime string  `json:"depTime,omitempty"` // "15:04:05"
	DepDate string  `json:"depDate,omitempty"` // "2006-01-02"
	ArrTime string  `json:"arrTime,omitempty"`
	ArrDate string  `json:"arrDate,omitempty"`
}

// DepartureBoardResponse represents the object returned by /departureBoard
type DepartureBoardResponse struct {
	Departures []Departure `json:"Departure"`
}

// Departure is a single vehicle leaving the queried stop
type Departure struct {
	Name          string         `json:"name"`
	Time          string         `json:"time"`
	Date          string         `json:"date"`
	Direction     string         `json:"direction"`
	ProductAtStop *ProductAtStop `json:"ProductAtStop,omitempty"`
}

// ArrivalBoardResponse represents the object returned by /arrivalBoard
type ArrivalBoardResponse struct {
	Arrivals []Arrival `json:"Arrival"`
}

// Arrival is a single vehicle arriving at the queried stop
type Arrival struct {
	Name          string         `json:"name"`
	Time          string         `json:"time"`
	Date          string         `json:"date"`
	Origin        string         `json:"origin"`
	ProductAtStop *ProductAtStop `json:"ProductAtStop,omitempty"`
}

// ProductAtStop holds the line information for a board entry
type ProductAtStop struct {
	CatOutL       string `json:"catOutL"`       // long category, e.g. "Länstrafik - Buss"
	DisplayNumber string `json:"displayNumber"` // e.g. "55"
}

// locationResponse represents the object returned by /location.name.
// Each array entry wraps either a StopLocation or a CoordLocation.
type locationResponse struct {
	Locations []locationEntry `json:"stopLocationOrCoordLocation"`
}

type locationEntry struct {
	StopLocation  *stopLocation  `json:"StopLocation,omitempty"`
	CoordLocation *coordLocation `json:"CoordLocation,omitempty"`
}

type stopLocation struct {
	Name  string  `json:"name"`
	ExtID string  `json:"extId"`
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
}

type coordLocation struct {
	Name string  `json:"name"`
	ID   string  `json:"id"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// StopCandidate is a geocoded match for a free-text stop search,
// flattened from the two location variants above
type StopCandidate struct {
	Name string
	ID   string
	Lon  float64
	Lat  float64
}
