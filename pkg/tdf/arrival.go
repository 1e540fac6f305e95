package tdf

type Arrival struct {
	RouteName   string `json:"route" yaml:"route"`
	Destination string `json:"destination" yaml:"destination"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	Scheduled   string `json:"scheduled" yaml:"scheduled"`
}

// ArrivalBoard is the set of upcoming arrivals at a single stop
type ArrivalBoard struct {
	StopID   int       `json:"stopId"`
	StopName string    `json:"stopName"`
	Arrivals []Arrival `json:"arrivals"`
}
