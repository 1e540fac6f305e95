package tdf

type Alternative struct {
	ID int `json:"id" yaml:"id"`

	// Duration in minutes
	Duration  int `json:"duration" yaml:"duration"`
	Transfers int `json:"transfers" yaml:"transfers"`

	Modes []TransportType `json:"modes" yaml:"modes"`

	CarbonFootprint float64 `json:"carbonFootprint" yaml:"carbon_footprint"`
}
