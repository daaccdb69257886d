package stay

import (
	"fmt"
	"iter"
	"time"
)

// DateFormat is the wire format for all stay dates.
const DateFormat = "2006-01-02"

// Request captures the normalized parameters of one pricing inquiry. It is
// a value type and never mutated after construction.
type Request struct {
	PropertyID int64
	Checkin    time.Time
	Checkout   time.Time
	Adults     int
	Children   int
	Infants    int
	Currency   string
	Nights     int
}

// Params are the raw inputs used to build a Request.
type Params struct {
	PropertyID int64
	Checkin    time.Time
	Checkout   time.Time
	Adults     int
	Children   int
	Infants    int
	Currency   string
}

// New normalizes the parameters into a Request. Dates are truncated to
// whole days in UTC and Nights is derived as the whole-day difference.
// Guest counts are kept as given; out-of-range values surface through
// Validate rather than being silently clamped.
func New(p Params) Request {
	checkin := midnight(p.Checkin)
	checkout := midnight(p.Checkout)
	nights := int(checkout.Sub(checkin).Hours() / 24)
	if nights < 0 {
		nights = 0
	}
	return Request{
		PropertyID: p.PropertyID,
		Checkin:    checkin,
		Checkout:   checkout,
		Adults:     p.Adults,
		Children:   p.Children,
		Infants:    p.Infants,
		Currency:   p.Currency,
		Nights:     nights,
	}
}

// ParseDate parses a wire-format stay date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, time.UTC)
}

// Validate reports every violation found in the request. An empty slice
// means the request is well formed. The reference day (usually today)
// anchors the past-checkin check.
func (r Request) Validate(today time.Time) []string {
	var violations []string
	if r.PropertyID <= 0 {
		violations = append(violations, "invalid property id")
	}
	if r.Nights <= 0 {
		violations = append(violations, "check-out date must be after check-in date")
	}
	if r.Nights > 366 {
		violations = append(violations, "maximum stay period is 366 nights")
	}
	if r.Adults < 1 {
		violations = append(violations, "at least one adult is required")
	}
	if r.Adults > 50 {
		violations = append(violations, "maximum 50 adults allowed")
	}
	if r.Children > 20 {
		violations = append(violations, "maximum 20 children allowed")
	}
	if r.Infants > 10 {
		violations = append(violations, "maximum 10 infants allowed")
	}
	if r.Checkin.Before(midnight(today)) {
		violations = append(violations, "check-in date cannot be in the past")
	}
	return violations
}

// TotalGuests counts the guests that occupy capacity. Infants are excluded
// from capacity and fee calculations.
func (r Request) TotalGuests() int {
	return r.Adults + r.Children
}

// AllGuests counts every guest including infants.
func (r Request) AllGuests() int {
	return r.Adults + r.Children + r.Infants
}

// Dates yields each night of the stay in order, covering [checkin,
// checkout). The sequence is lazy and can be ranged over multiple times.
func (r Request) Dates() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.Checkin; d.Before(r.Checkout); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// CheckinWeekday returns the day of week of the check-in date.
func (r Request) CheckinWeekday() time.Weekday {
	return r.Checkin.Weekday()
}

// CheckoutWeekday returns the day of week of the check-out date.
func (r Request) CheckoutWeekday() time.Weekday {
	return r.Checkout.Weekday()
}

// CacheKey derives the deterministic key callers may use to cache quotes
// for identical inquiries. Two requests with the same key always produce
// the same quote under unchanged configuration.
func (r Request) CacheKey() string {
	return fmt.Sprintf("quote:%d:%s:%s:%d:%d:%d:%s",
		r.PropertyID,
		r.Checkin.Format(DateFormat),
		r.Checkout.Format(DateFormat),
		r.Adults,
		r.Children,
		r.Infants,
		r.Currency,
	)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
