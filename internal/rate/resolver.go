package rate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// SeasonalOverride replaces the nightly rate, and optionally the
// stay-length window, for the inclusive date range it covers.
type SeasonalOverride struct {
	Name      string       `json:"name"`
	Start     time.Time    `json:"start_date"`
	End       time.Time    `json:"end_date"`
	Rate      money.Amount `json:"rate"`
	MinNights int          `json:"min_nights"`
	MaxNights int          `json:"max_nights"`
	Priority  int          `json:"priority"`
}

func (o SeasonalOverride) contains(date time.Time) bool {
	return !date.Before(o.Start) && !date.After(o.End)
}

// Config holds the nightly-rate rules and stay constraints of one property.
type Config struct {
	BaseRate          money.Amount
	WeekdayOverrides  map[time.Weekday]money.Amount
	SeasonalOverrides []SeasonalOverride
	MinNights         int
	MaxNights         int // 0 means no upper bound
	CheckinDays       []time.Weekday
	CheckoutDays      []time.Weekday
	BaseCapacity      int
}

// Constraints echoes the booking rules attached to a quote.
type Constraints struct {
	MinNights    int            `json:"min_nights"`
	MaxNights    int            `json:"max_nights"`
	CheckinDays  []time.Weekday `json:"checkin_days"`
	CheckoutDays []time.Weekday `json:"checkout_days"`
}

// Resolver answers per-night rates and stay-length constraints for one
// property. Seasonal overrides are sorted once at construction.
type Resolver struct {
	cfg Config

	// byPriority is ordered priority-descending, stable on declaration
	// order. declared keeps the original declaration order, which is what
	// constraint matching scans.
	byPriority []SeasonalOverride
	declared   []SeasonalOverride
}

// NewResolver builds a Resolver from an already-defaulted Config.
func NewResolver(cfg Config) *Resolver {
	byPriority := make([]SeasonalOverride, len(cfg.SeasonalOverrides))
	copy(byPriority, cfg.SeasonalOverrides)
	sort.SliceStable(byPriority, func(i, j int) bool {
		return byPriority[i].Priority > byPriority[j].Priority
	})
	return &Resolver{cfg: cfg, byPriority: byPriority, declared: cfg.SeasonalOverrides}
}

// DailyRate resolves the nightly rate for date: the highest-priority
// seasonal override containing the date wins, then the weekday override,
// then the base rate. Seasonal and weekday overrides never combine.
func (r *Resolver) DailyRate(date time.Time) money.Amount {
	for _, season := range r.byPriority {
		if season.contains(date) {
			return season.Rate
		}
	}
	if override, ok := r.cfg.WeekdayOverrides[date.Weekday()]; ok {
		return override
	}
	return r.cfg.BaseRate
}

// SeasonalConstraints returns the stay-length window in effect on date.
// Unlike DailyRate, overrides are scanned in declaration order here.
func (r *Resolver) SeasonalConstraints(date time.Time) (minNights, maxNights int) {
	for _, season := range r.declared {
		if season.contains(date) {
			return season.MinNights, season.MaxNights
		}
	}
	return r.cfg.MinNights, r.cfg.MaxNights
}

// ValidateConstraints reports every booking-rule violation for the stay:
// global stay-length bounds, check-in/check-out weekday allow-sets and the
// seasonal window at the check-in date.
func (r *Resolver) ValidateConstraints(req stay.Request) []string {
	var violations []string

	if req.Nights < r.cfg.MinNights {
		violations = append(violations, fmt.Sprintf("minimum stay is %d nights", r.cfg.MinNights))
	}
	if r.cfg.MaxNights > 0 && req.Nights > r.cfg.MaxNights {
		violations = append(violations, fmt.Sprintf("maximum stay is %d nights", r.cfg.MaxNights))
	}

	if !dayAllowed(r.cfg.CheckinDays, req.CheckinWeekday()) {
		violations = append(violations, fmt.Sprintf("check-in is only allowed on: %s", dayNames(r.cfg.CheckinDays)))
	}
	if !dayAllowed(r.cfg.CheckoutDays, req.CheckoutWeekday()) {
		violations = append(violations, fmt.Sprintf("check-out is only allowed on: %s", dayNames(r.cfg.CheckoutDays)))
	}

	seasonMin, seasonMax := r.SeasonalConstraints(req.Checkin)
	if req.Nights < seasonMin {
		violations = append(violations, fmt.Sprintf("minimum stay for this period is %d nights", seasonMin))
	}
	if seasonMax > 0 && req.Nights > seasonMax {
		violations = append(violations, fmt.Sprintf("maximum stay for this period is %d nights", seasonMax))
	}

	return violations
}

// BaseCapacity returns the guest count included in the nightly rate.
func (r *Resolver) BaseCapacity() int {
	return r.cfg.BaseCapacity
}

// Constraints returns the booking rules echoed on quotes.
func (r *Resolver) Constraints() Constraints {
	return Constraints{
		MinNights:    r.cfg.MinNights,
		MaxNights:    r.cfg.MaxNights,
		CheckinDays:  r.cfg.CheckinDays,
		CheckoutDays: r.cfg.CheckoutDays,
	}
}

func dayAllowed(days []time.Weekday, day time.Weekday) bool {
	if len(days) == 0 {
		return true
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func dayNames(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}
