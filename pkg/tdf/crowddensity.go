package tdf

type CrowdDensityTier string

const (
	CrowdDensityTierLow    CrowdDensityTier = "low"
	CrowdDensityTierMedium CrowdDensityTier = "medium"
	CrowdDensityTierHigh   CrowdDensityTier = "high"
)

type CrowdDensity struct {
	RouteID string `json:"routeId"`
	Time    string `json:"time"`

	Density CrowdDensityTier `json:"density"`
	// Occupancy level as a percentage, 0-100
	Level int `json:"level"`

	Recommendation string `json:"recommendation"`
}
