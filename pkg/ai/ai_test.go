package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/tdf"
)

func testService(t *testing.T) *Service {
	t.Helper()

	ds, err := dataset.Load()
	require.NoError(t, err)

	return NewService(ds, 0)
}

func TestPredictDelay(t *testing.T) {
	service := testService(t)

	prediction, err := service.PredictDelay(context.Background(), "1", "2")
	require.NoError(t, err)

	assert.Equal(t, "1", prediction.RouteID)
	assert.Equal(t, "2", prediction.StopID)
	assert.Equal(t, 2.0, prediction.Prediction.ExpectedDelay)
	assert.Equal(t, 0.85, prediction.Prediction.Confidence)
	assert.Len(t, prediction.Prediction.Factors, 3)

	updatedArrival, err := time.Parse(time.RFC3339, prediction.Prediction.UpdatedArrival)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), updatedArrival, time.Minute)
}

func TestProcessQuery(t *testing.T) {
	service := testService(t)

	tests := []struct {
		name           string
		query          string
		expectedIntent tdf.QueryIntent
	}{
		{
			name:           "both keywords lower case",
			query:          "how do i get from waterfront to burrard",
			expectedIntent: tdf.QueryIntentRoutePlanning,
		},
		{
			name:           "both keywords mixed case",
			query:          "WATERFRONT to BURRARD please",
			expectedIntent: tdf.QueryIntentRoutePlanning,
		},
		{
			name:           "only one keyword",
			query:          "when is the next train at waterfront",
			expectedIntent: tdf.QueryIntentGeneralQuery,
		},
		{
			name:           "unrelated text",
			query:          "what is the weather like",
			expectedIntent: tdf.QueryIntentGeneralQuery,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := service.ProcessQuery(context.Background(), test.query)
			require.NoError(t, err)

			assert.Equal(t, test.expectedIntent, result.Intent)
			assert.NotNil(t, result.Entities)
			assert.NotEmpty(t, result.Response)

			if test.expectedIntent == tdf.QueryIntentRoutePlanning {
				assert.Equal(t, "Waterfront Station", result.Entities["origin"])
				assert.Equal(t, "Burrard Station", result.Entities["destination"])
				assert.Equal(t, "plan_route", result.SuggestedAction)
			} else {
				assert.Empty(t, result.Entities)
				assert.Empty(t, result.SuggestedAction)
			}
		})
	}
}

func TestProcessQueryEntitiesAreIndependentCopies(t *testing.T) {
	service := testService(t)

	result, err := service.ProcessQuery(context.Background(), "waterfront to burrard")
	require.NoError(t, err)
	result.Entities["origin"] = "tampered"

	resultAgain, err := service.ProcessQuery(context.Background(), "waterfront to burrard")
	require.NoError(t, err)
	assert.Equal(t, "Waterfront Station", resultAgain.Entities["origin"])
}

func TestCrowdDensity(t *testing.T) {
	service := testService(t)

	tests := []struct {
		hour            int
		expectedDensity tdf.CrowdDensityTier
		expectedLevel   int
	}{
		{hour: 8, expectedDensity: tdf.CrowdDensityTierHigh, expectedLevel: 85},
		{hour: 13, expectedDensity: tdf.CrowdDensityTierLow, expectedLevel: 20},
		// Hour 17 is inside both the high and medium windows, the high rule
		// must win
		{hour: 17, expectedDensity: tdf.CrowdDensityTierHigh, expectedLevel: 85},
		{hour: 6, expectedDensity: tdf.CrowdDensityTierMedium, expectedLevel: 50},
		{hour: 10, expectedDensity: tdf.CrowdDensityTierMedium, expectedLevel: 50},
		{hour: 19, expectedDensity: tdf.CrowdDensityTierMedium, expectedLevel: 50},
		{hour: 23, expectedDensity: tdf.CrowdDensityTierLow, expectedLevel: 20},
		{hour: 0, expectedDensity: tdf.CrowdDensityTierLow, expectedLevel: 20},
	}

	for _, test := range tests {
		at := time.Date(2026, time.September, 1, test.hour, 30, 0, 0, time.UTC)

		crowdDensity, err := service.CrowdDensity(context.Background(), "1", at)
		require.NoError(t, err)

		assert.Equal(t, test.expectedDensity, crowdDensity.Density, "hour %d", test.hour)
		assert.Equal(t, test.expectedLevel, crowdDensity.Level, "hour %d", test.hour)
		assert.Equal(t, "1", crowdDensity.RouteID)
		assert.Equal(t, at.Format(time.RFC3339), crowdDensity.Time)
		assert.NotEmpty(t, crowdDensity.Recommendation)
	}
}
