package transit

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/transitflow/transitflow/pkg/apierror"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/tdf"
	"github.com/transitflow/transitflow/pkg/util"
	"golang.org/x/exp/slices"
)

// Service serves the static transit network along with the best-effort bus
// line lookup
type Service struct {
	dataset *dataset.Dataset
	delay   time.Duration

	busLines *BestEffortBusLines
}

func NewService(ds *dataset.Dataset, delay time.Duration, busLineSource BusLineSource) *Service {
	return &Service{
		dataset: ds,
		delay:   delay,

		busLines: &BestEffortBusLines{
			Source:   busLineSource,
			Fallback: ds.BusLineFallback,
		},
	}
}

func (s *Service) ListRoutes(ctx context.Context) ([]tdf.Route, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	return slices.Clone(s.dataset.Routes), nil
}

func (s *Service) ListStops(ctx context.Context) ([]tdf.Stop, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	return slices.Clone(s.dataset.Stops), nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]tdf.Vehicle, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	return slices.Clone(s.dataset.Vehicles), nil
}

func (s *Service) GetArrivals(ctx context.Context, stopID int) (*tdf.ArrivalBoard, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	stopIndex := slices.IndexFunc(s.dataset.Stops, func(stop tdf.Stop) bool {
		return stop.ID == stopID
	})
	if stopIndex == -1 {
		return nil, apierror.NewNotFound("Stop not found")
	}

	return &tdf.ArrivalBoard{
		StopID:   stopID,
		StopName: s.dataset.Stops[stopIndex].Name,
		Arrivals: slices.Clone(s.dataset.ArrivalBoard),
	}, nil
}

// GetNetwork returns the combined network snapshot, fetching each collection
// concurrently
func (s *Service) GetNetwork(ctx context.Context) (*tdf.Network, error) {
	var network tdf.Network

	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		routes, err := s.ListRoutes(ctx)
		network.Routes = routes
		return err
	})
	p.Go(func(ctx context.Context) error {
		stops, err := s.ListStops(ctx)
		network.Stops = stops
		return err
	})
	p.Go(func(ctx context.Context) error {
		vehicles, err := s.ListVehicles(ctx)
		network.Vehicles = vehicles
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &network, nil
}

// GetBusLines never fails - any upstream problem falls back to the static
// entries
func (s *Service) GetBusLines(ctx context.Context, routeNumber string) []tdf.BusLine {
	return s.busLines.Lookup(ctx, routeNumber)
}
