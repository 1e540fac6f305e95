package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitflow/transitflow/pkg/tdf"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Len(t, ds.Routes, 5)
	assert.Len(t, ds.Stops, 6)
	assert.Len(t, ds.Vehicles, 3)
	assert.Len(t, ds.ArrivalBoard, 3)
	assert.Len(t, ds.Alternatives, 3)
	assert.Len(t, ds.Itinerary.Legs, 3)
	assert.Len(t, ds.BusLineFallback, 2)

	assert.Equal(t, "Expo Line", ds.Routes[0].Name)
	assert.Equal(t, tdf.TransportTypeSkyTrain, ds.Routes[0].Type)
	assert.Equal(t, "Waterfront Station", ds.Stops[0].Name)

	assert.Equal(t, 100, ds.Latency.TransitMS)
	assert.Equal(t, 150, ds.Latency.PlannerMS)
	assert.Equal(t, 200, ds.Latency.AIMS)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "not yaml",
			document: "{{{{",
		},
		{
			name:     "missing collections",
			document: "routes: []",
		},
		{
			name: "broken crowd rule expression",
			document: `
routes: [{id: 1, name: A, type: bus, color: "#fff"}]
stops: [{id: 1, name: A, lat: 0, lng: 0, type: bus}]
vehicles: [{id: 1, route_id: 1, route: A, lat: 0, lng: 0, type: bus, heading: 0}]
arrival_board: [{route: A, destination: B, minutes: 1, scheduled: "10:00"}]
itinerary: {duration: 1, distance: 1, carbon_footprint: 0, cost: 0, legs: [{mode: walk, from: "", to: "", duration: 1, distance: 1}]}
alternatives: [{id: 1, duration: 1, transfers: 0, modes: [walk], carbon_footprint: 0}]
optimization: {improvements: [a], carbon_saved: 0, time_saved: 0}
prediction: {expected_delay: 1, confidence: 0.5, factors: [a], arrival_offset_minutes: 5}
crowd_rules: [{when: "hour >>> 1", density: low, level: 1, recommendation: a}]
query_fallback: {intent: general_query, entities: {}, response: a}
bus_line_fallback: [{direction: EAST, destination: UBC}]
latency: {transit_ms: 0, planner_ms: 0, ai_ms: 0}
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := load([]byte(test.document))
			assert.Error(t, err)
		})
	}
}

func TestCrowdRuleOrdering(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	// The high density rule must come before the overlapping medium rule
	require.GreaterOrEqual(t, len(ds.CrowdRules), 3)
	assert.Equal(t, tdf.CrowdDensityTierHigh, ds.CrowdRules[0].Density)
	assert.Equal(t, tdf.CrowdDensityTierMedium, ds.CrowdRules[1].Density)
	assert.Equal(t, tdf.CrowdDensityTierLow, ds.CrowdRules[2].Density)

	matches, err := ds.CrowdRules[0].Matches(8)
	require.NoError(t, err)
	assert.True(t, matches)

	matches, err = ds.CrowdRules[1].Matches(8)
	require.NoError(t, err)
	assert.True(t, matches, "hour 8 is inside both windows, ordering decides the tier")

	matches, err = ds.CrowdRules[0].Matches(13)
	require.NoError(t, err)
	assert.False(t, matches)
}
