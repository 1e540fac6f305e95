package transit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/transitflow/transitflow/pkg/dataset"
	"github.com/transitflow/transitflow/pkg/tdf"
)

// BusLineSource is the live lookup behind the best-effort wrapper
type BusLineSource interface {
	HasAPIKey() bool
	GetBusLines(ctx context.Context, routeNumber string) ([]tdf.BusLine, error)
}

// BestEffortBusLines tries the live TransLink lookup and substitutes the
// configured fallback entries on any failure. Upstream outages are never
// surfaced to callers.
type BestEffortBusLines struct {
	Source   BusLineSource
	Fallback []dataset.BusLineTemplate
}

func (b *BestEffortBusLines) Lookup(ctx context.Context, routeNumber string) []tdf.BusLine {
	if b.Source == nil || !b.Source.HasAPIKey() {
		log.Debug().Msg("TransLink API key not configured, using fallback bus lines")

		return b.fallbackBusLines(routeNumber)
	}

	busLines, err := b.Source.GetBusLines(ctx, routeNumber)
	if err != nil {
		log.Error().Err(err).Str("route", routeNumber).Msg("TransLink lookup failed, using fallback bus lines")

		return b.fallbackBusLines(routeNumber)
	}

	return busLines
}

func (b *BestEffortBusLines) fallbackBusLines(routeNumber string) []tdf.BusLine {
	busLines := make([]tdf.BusLine, 0, len(b.Fallback))

	for _, template := range b.Fallback {
		busLines = append(busLines, tdf.BusLine{
			RouteNo:     routeNumber,
			RouteName:   fmt.Sprintf("Bus Route %s", routeNumber),
			Direction:   template.Direction,
			Destination: template.Destination,
		})
	}

	return busLines
}
