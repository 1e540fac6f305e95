package planner

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/tdf"
	"github.com/transitflow/transitflow/pkg/util"
	"golang.org/x/exp/slices"
)

// Service produces itineraries from the configured template. There is no
// journey graph behind it yet, so every plan is the template with the
// requested origin and destination substituted into the outer legs.
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

func (s *Service) PlanRoute(ctx context.Context, origin string, destination string, departureTime string, preferences []string) (*tdf.Itinerary, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	if len(preferences) > 0 {
		// Preferences are part of the request contract but nothing acts on
		// them until a real planner exists
		log.Debug().Strs("preferences", preferences).Msg("Ignoring plan preferences")
	}

	var itinerary tdf.Itinerary
	if err := copier.CopyWithOption(&itinerary, s.dataset.Itinerary, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	if departureTime == "" {
		departureTime = time.Now().Format(time.RFC3339)
	}

	itinerary.Origin = origin
	itinerary.Destination = destination
	itinerary.DepartureTime = departureTime

	itinerary.Legs[0].From = origin
	itinerary.Legs[len(itinerary.Legs)-1].To = destination

	return &itinerary, nil
}

func (s *Service) Alternatives(ctx context.Context, origin string, destination string) ([]tdf.Alternative, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	return slices.Clone(s.dataset.Alternatives), nil
}

// Optimize returns a deep copy of the given itinerary annotated with the
// configured improvement notes
func (s *Service) Optimize(ctx context.Context, route tdf.Itinerary, preferences []string) (*tdf.OptimizedItinerary, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	var optimized tdf.OptimizedItinerary
	if err := copier.CopyWithOption(&optimized.Itinerary, route, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	optimized.Optimized = true
	optimized.Improvements = slices.Clone(s.dataset.Optimization.Improvements)
	optimized.CarbonSaved = s.dataset.Optimization.CarbonSaved
	optimized.TimeSaved = s.dataset.Optimization.TimeSaved

	return &optimized, nil
}
