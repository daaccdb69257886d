package availability

import (
	"time"

	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// Booking statuses understood by the occupancy projection.
const (
	BookingConfirmed = "CONFIRMED"
	BookingPending   = "PENDING"
	BookingCancelled = "CANCELLED"
)

// Booking is the slice of a reservation relevant to occupancy. The
// checkout day itself is not occupied.
type Booking struct {
	Checkin  time.Time
	Checkout time.Time
	Status   string
}

// ProjectOccupancy folds bookings into a per-date occupancy map over
// [from, to). Confirmed bookings mark dates full; pending bookings mark
// still-vacant dates partial; cancelled bookings are ignored.
func ProjectOccupancy(from, to time.Time, bookings []Booking) map[string]Status {
	out := emptyOccupancyMap(from, to)
	for _, b := range bookings {
		if b.Status == BookingCancelled {
			continue
		}
		for d := b.Checkin; d.Before(b.Checkout); d = d.AddDate(0, 0, 1) {
			key := d.Format(stay.DateFormat)
			current, ok := out[key]
			if !ok {
				continue
			}
			switch b.Status {
			case BookingConfirmed:
				out[key] = StatusFull
			case BookingPending:
				if current == StatusVacant {
					out[key] = StatusPartial
				}
			}
		}
	}
	return out
}
