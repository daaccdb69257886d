package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minpaku-dev/pricing-api/internal/availability"
	"github.com/minpaku-dev/pricing-api/internal/fee"
	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/property"
	"github.com/minpaku-dev/pricing-api/internal/rate"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// Engine prices one stay against one property configuration. The
// configuration is treated as a read-only snapshot; every Calculate call
// produces a fresh Quote.
type Engine struct {
	Request  stay.Request
	Property property.Config
	Oracle   availability.Oracle
	Hooks    Hooks
	Logger   zerolog.Logger
	Now      func() time.Time

	resolver *rate.Resolver
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

func (e *Engine) rates() *rate.Resolver {
	if e.resolver == nil {
		e.resolver = rate.NewResolver(e.Property.Rate)
	}
	return e.resolver
}

// Calculate runs the full pricing pipeline: request validation, booking
// constraints, availability, accommodation and fee line items, discounts,
// service fee, taxes, totals and finally the registered hooks. Errors are
// raised before any Quote is constructed; a partial Quote is never
// returned.
func (e *Engine) Calculate(ctx context.Context) (Quote, error) {
	req := e.Request

	if violations := req.Validate(e.now()); len(violations) > 0 {
		return Quote{}, &ValidationError{Violations: violations}
	}
	if violations := e.rates().ValidateConstraints(req); len(violations) > 0 {
		return Quote{}, &ConstraintError{Violations: violations}
	}
	if err := e.checkAvailability(ctx, req); err != nil {
		return Quote{}, err
	}

	var items []LineItem

	accommodation := e.accommodationItem(req)
	items = append(items, accommodation)

	if extra := e.Property.Fees.ExtraGuestCharge(req.TotalGuests(), req.Nights); extra > 0 {
		over := req.TotalGuests() - e.Property.Fees.ExtraGuestThreshold
		items = append(items, LineItem{
			Code:     CodeExtraGuest,
			Label:    fmt.Sprintf("Extra Guest Fee (%d guests × %d nights)", over, req.Nights),
			Guests:   over,
			Nights:   req.Nights,
			Unit:     e.Property.Fees.ExtraGuestFee,
			Subtotal: extra,
		})
	}

	if e.Property.Fees.CleaningFee > 0 {
		items = append(items, LineItem{
			Code:     CodeCleaning,
			Label:    "Cleaning Fee",
			Subtotal: e.Property.Fees.CleaningFee,
		})
	}

	subtotalBeforeDiscounts := sumSubtotals(items)

	for _, line := range e.Property.Discount.Calculate(req.Nights, accommodation.Subtotal) {
		items = append(items, LineItem{
			Code:            line.Code,
			Label:           line.Label,
			Rate:            line.Rate,
			ThresholdNights: line.ThresholdNights,
			Subtotal:        line.Subtotal,
		})
	}

	subtotalAfterDiscounts := sumSubtotals(items)

	if service := e.Property.Fees.ServiceFee(subtotalAfterDiscounts); service > 0 {
		items = append(items, LineItem{
			Code:     CodeService,
			Label:    e.Property.Fees.ServiceFeeLabel(),
			Subtotal: service,
		})
	}

	finalSubtotal := sumSubtotals(items)
	taxes := e.Property.Fees.Taxes(taxableItems(items))

	var totalTax money.Amount
	for _, line := range taxes {
		totalTax += line.Amount
	}
	totals := Totals{
		SubtotalBeforeDiscounts: subtotalBeforeDiscounts,
		SubtotalAfterDiscounts:  subtotalAfterDiscounts,
		TotalExclTax:            finalSubtotal,
		TotalTax:                totalTax,
		TotalInclTax:            finalSubtotal + totalTax,
	}

	// Totals are frozen here. Line-item hooks may still reshape the items
	// and the totals intentionally keep their pre-hook values.
	for _, transform := range e.Hooks.LineItems {
		items = transform(items, req)
	}

	q := Quote{
		PropertyID: req.PropertyID,
		Currency:   req.Currency,
		Nights:     req.Nights,
		Guests: Guests{
			Adults:   req.Adults,
			Children: req.Children,
			Infants:  req.Infants,
			Total:    req.TotalGuests(),
		},
		Dates: Dates{
			Checkin:  req.Checkin.Format(stay.DateFormat),
			Checkout: req.Checkout.Format(stay.DateFormat),
		},
		LineItems:   items,
		Taxes:       taxes,
		Totals:      totals,
		Constraints: e.rates().Constraints(),
	}

	for _, transform := range e.Hooks.Quotes {
		q = transform(q, req)
	}

	e.Logger.Debug().
		Int64("property_id", q.PropertyID).
		Str("checkin", q.Dates.Checkin).
		Str("checkout", q.Dates.Checkout).
		Int("nights", q.Nights).
		Int("guests", q.Guests.Total).
		Int("line_items", len(q.LineItems)).
		Int64("total_incl_tax", q.Totals.TotalInclTax).
		Msg("quote calculated")

	return q, nil
}

// checkAvailability fails the quote when any requested night is not
// vacant. An oracle failure also fails the quote; pricing never proceeds
// on unknown occupancy. A nil oracle treats every date as vacant.
func (e *Engine) checkAvailability(ctx context.Context, req stay.Request) error {
	if e.Oracle == nil {
		return nil
	}
	occupancy, err := e.Oracle.OccupancyMap(ctx, req.PropertyID, req.Checkin, req.Checkout)
	if err != nil {
		return &AvailabilityError{Err: err}
	}

	var blocked []string
	for date := range req.Dates() {
		key := date.Format(stay.DateFormat)
		status, ok := occupancy[key]
		if !ok {
			continue
		}
		if status != availability.StatusVacant {
			blocked = append(blocked, key)
		}
	}
	if len(blocked) > 0 {
		return &AvailabilityError{Dates: blocked}
	}
	return nil
}

func (e *Engine) accommodationItem(req stay.Request) LineItem {
	var total money.Amount
	breakdown := make([]DailyRate, 0, req.Nights)
	for date := range req.Dates() {
		nightly := e.rates().DailyRate(date)
		total += nightly
		breakdown = append(breakdown, DailyRate{
			Date:    date.Format(stay.DateFormat),
			Weekday: date.Weekday().String(),
			Rate:    nightly,
		})
	}
	return LineItem{
		Code:           CodeBase,
		Label:          "Accommodation",
		Nights:         req.Nights,
		Unit:           money.Round(float64(total) / float64(req.Nights)),
		Subtotal:       total,
		DailyBreakdown: breakdown,
	}
}

func sumSubtotals(items []LineItem) money.Amount {
	var total money.Amount
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

func taxableItems(items []LineItem) []fee.Item {
	out := make([]fee.Item, 0, len(items))
	for _, item := range items {
		out = append(out, fee.Item{Code: item.Code, Subtotal: item.Subtotal})
	}
	return out
}
