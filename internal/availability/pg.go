package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGOracle projects occupancy from the bookings table.
type PGOracle struct {
	Pool *pgxpool.Pool
}

// OccupancyMap implements Oracle. Cancelled bookings are excluded at the
// query level; the remaining rows are folded by ProjectOccupancy.
func (o PGOracle) OccupancyMap(ctx context.Context, propertyID int64, from, to time.Time) (map[string]Status, error) {
	const q = `
SELECT checkin, checkout, status
FROM bookings
WHERE property_id = $1
  AND status <> $2
  AND checkin < $3
  AND checkout > $4`

	rows, err := o.Pool.Query(ctx, q, propertyID, BookingCancelled, to, from)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.Checkin, &b.Checkout, &b.Status); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return ProjectOccupancy(from, to, bookings), nil
}
