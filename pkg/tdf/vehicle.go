package tdf

type Vehicle struct {
	ID        int           `json:"id" yaml:"id"`
	RouteID   int           `json:"routeId" yaml:"route_id"`
	RouteName string        `json:"route" yaml:"route"`
	Type      TransportType `json:"type" yaml:"type"`

	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lng" yaml:"lng"`

	// Compass heading in degrees, 0-360
	Heading int `json:"heading" yaml:"heading"`
}
