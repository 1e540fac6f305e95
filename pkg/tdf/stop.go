package tdf

type Stop struct {
	ID   int           `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
	Type TransportType `json:"type" yaml:"type"`

	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lng" yaml:"lng"`
}
