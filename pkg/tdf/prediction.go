package tdf

type DelayPrediction struct {
	RouteID string `json:"routeId"`
	StopID  string `json:"stopId,omitempty"`

	Prediction PredictionDetail `json:"prediction"`
}

type PredictionDetail struct {
	// Expected delay in minutes
	ExpectedDelay float64 `json:"expectedDelay" yaml:"expected_delay"`
	// Confidence between 0.0 and 1.0
	Confidence float64 `json:"confidence" yaml:"confidence"`

	Factors []string `json:"factors" yaml:"factors"`

	UpdatedArrival string `json:"updatedArrival"`
}
