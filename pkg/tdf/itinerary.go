package tdf

type Itinerary struct {
	Origin        string `json:"origin" groups:"basic"`
	Destination   string `json:"destination" groups:"basic"`
	DepartureTime string `json:"departureTime" groups:"basic"`

	// Total journey duration in minutes
	Duration int `json:"duration" yaml:"duration" groups:"basic"`
	// Total journey distance in km
	Distance float64 `json:"distance" yaml:"distance" groups:"basic"`

	Legs []Leg `json:"legs" yaml:"legs" groups:"basic,detailed"`

	// Estimated emissions in kg CO2
	CarbonFootprint float64 `json:"carbonFootprint" yaml:"carbon_footprint" groups:"basic"`
	Cost            float64 `json:"cost" yaml:"cost" groups:"basic"`
}

type Leg struct {
	Mode TransportType `json:"mode" yaml:"mode" groups:"basic,detailed"`

	From string `json:"from" yaml:"from" groups:"basic,detailed"`
	To   string `json:"to" yaml:"to" groups:"basic,detailed"`

	RouteName string `json:"route,omitempty" yaml:"route" groups:"basic,detailed"`

	Duration int     `json:"duration" yaml:"duration" groups:"basic,detailed"`
	Distance float64 `json:"distance" yaml:"distance" groups:"basic,detailed"`

	// Headsign and the calling pattern only appear on detailed responses
	Headsign string   `json:"headsign,omitempty" yaml:"headsign" groups:"detailed"`
	Stops    []string `json:"stops,omitempty" yaml:"stops" groups:"detailed"`
}

// OptimizedItinerary wraps an itinerary with the improvement annotations
// produced by the route optimiser
type OptimizedItinerary struct {
	Itinerary `groups:"basic,detailed"`

	Optimized    bool     `json:"optimized" groups:"basic"`
	Improvements []string `json:"improvements" groups:"basic"`

	CarbonSaved float64 `json:"carbonSaved" groups:"basic"`
	TimeSaved   int     `json:"timeSaved" groups:"basic"`
}
