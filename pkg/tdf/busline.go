package tdf

// BusLine matches the record shape returned by the TransLink RTTI API,
// hence the upper-case JSON field names
type BusLine struct {
	RouteNo     string `json:"RouteNo"`
	RouteName   string `json:"RouteName"`
	Direction   string `json:"Direction"`
	Destination string `json:"Destination"`
}
