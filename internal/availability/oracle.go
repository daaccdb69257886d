package availability

import (
	"context"
	"time"

	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// Status is the per-date occupancy state of a property.
type Status string

// Occupancy statuses.
const (
	StatusVacant  Status = "vacant"
	StatusPartial Status = "partial"
	StatusFull    Status = "full"
)

// Oracle reports per-date occupancy for a property over [from, to),
// keyed by wire-format date. Dates absent from the map are vacant.
type Oracle interface {
	OccupancyMap(ctx context.Context, propertyID int64, from, to time.Time) (map[string]Status, error)
}

// StaticOracle serves a fixed occupancy map, primarily for tests and
// embedded hosts. A non-nil Err is returned for every lookup.
type StaticOracle struct {
	Maps map[int64]map[string]Status
	Err  error
}

// OccupancyMap implements Oracle.
func (o StaticOracle) OccupancyMap(_ context.Context, propertyID int64, from, to time.Time) (map[string]Status, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	known := o.Maps[propertyID]
	out := emptyOccupancyMap(from, to)
	for date, status := range known {
		if _, ok := out[date]; ok {
			out[date] = status
		}
	}
	return out, nil
}

func emptyOccupancyMap(from, to time.Time) map[string]Status {
	out := make(map[string]Status)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		out[d.Format(stay.DateFormat)] = StatusVacant
	}
	return out
}
