package ai

import (
	"context"
	"strings"
	"time"

	"github.com/transitflow/transitflow/pkg/apierror"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/tdf"
	"github.com/transitflow/transitflow/pkg/util"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Service answers the prediction style queries. The answers come straight
// from the dataset - the only input-sensitive parts are the keyword matching
// and the hour-of-day bucketing.
type Service struct {
	dataset *dataset.Dataset
	delay   time.Duration
}

func NewService(ds *dataset.Dataset, delay time.Duration) *Service {
	return &Service{
		dataset: ds,
		delay:   delay,
	}
}

func (s *Service) PredictDelay(ctx context.Context, routeID string, stopID string) (*tdf.DelayPrediction, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	arrivalOffset := time.Duration(s.dataset.Prediction.ArrivalOffsetMinutes) * time.Minute

	return &tdf.DelayPrediction{
		RouteID: routeID,
		StopID:  stopID,

		Prediction: tdf.PredictionDetail{
			ExpectedDelay:  s.dataset.Prediction.ExpectedDelay,
			Confidence:     s.dataset.Prediction.Confidence,
			Factors:        slices.Clone(s.dataset.Prediction.Factors),
			UpdatedArrival: time.Now().Add(arrivalOffset).Format(time.RFC3339),
		},
	}, nil
}

// ProcessQuery runs the free-text query against the keyword rules in order
// and falls back to the generic response when nothing matches
func (s *Service) ProcessQuery(ctx context.Context, query string) (*tdf.QueryResult, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	loweredQuery := strings.ToLower(query)

	for _, rule := range s.dataset.QueryRules {
		if matchesAllKeywords(loweredQuery, rule.Keywords) {
			result := rule.Result
			result.Entities = maps.Clone(result.Entities)

			return &result, nil
		}
	}

	fallback := s.dataset.QueryFallback
	fallback.Entities = maps.Clone(fallback.Entities)
	if fallback.Entities == nil {
		fallback.Entities = map[string]string{}
	}

	return &fallback, nil
}

// CrowdDensity classifies the hour of day using the ordered rule list, first
// match wins
func (s *Service) CrowdDensity(ctx context.Context, routeID string, at time.Time) (*tdf.CrowdDensity, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	hour := at.Hour()

	for i := range s.dataset.CrowdRules {
		rule := &s.dataset.CrowdRules[i]

		matches, err := rule.Matches(hour)
		if err != nil {
			return nil, err
		}

		if matches {
			return &tdf.CrowdDensity{
				RouteID: routeID,
				Time:    at.Format(time.RFC3339),

				Density: rule.Density,
				Level:   rule.Level,

				Recommendation: rule.Recommendation,
			}, nil
		}
	}

	return nil, apierror.NewInternal("No crowd density rule matched")
}

func matchesAllKeywords(loweredQuery string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(loweredQuery, keyword) {
			return false
		}
	}

	return true
}
