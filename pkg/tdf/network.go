package tdf

// Network is a combined snapshot of the static transit network, used by the
// map view to avoid three round trips
type Network struct {
	Routes   []Route   `json:"routes"`
	Stops    []Stop    `json:"stops"`
	Vehicles []Vehicle `json:"vehicles"`
}
