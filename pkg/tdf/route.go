package tdf

type Route struct {
	ID   int           `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
	Type TransportType `json:"type" yaml:"type"`

	BrandColour string `json:"color" yaml:"color"`
}
