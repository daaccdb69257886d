package discount

import (
	"fmt"

	"github.com/minpaku-dev/pricing-api/internal/money"
)

// Line item codes emitted by the built-in discounts.
const (
	CodeWeekly  = "weekly"
	CodeMonthly = "monthly"
)

// Tier is one stay-length discount rung.
type Tier struct {
	Percent         float64
	ThresholdNights int
}

func (t Tier) applies(nights int) bool {
	return t.Percent > 0 && nights >= t.ThresholdNights
}

// Line is one computed discount prior to being merged into a quote. The
// subtotal is negative.
type Line struct {
	Code            string
	Label           string
	Rate            float64
	Subtotal        money.Amount
	ThresholdNights int
}

// Extension appends custom discount lines after the built-in computation.
// Extensions see the same inputs as the built-in discounts and are
// independent of them.
type Extension func(nights int, accommodationSubtotal money.Amount) []Line

// Schedule computes stay-length percentage discounts over the
// accommodation subtotal. Fees are never discounted.
type Schedule struct {
	Weekly     Tier
	Monthly    Tier
	Extensions []Extension
}

// Calculate emits at most one built-in discount line: the monthly tier
// wins over the weekly one, never both. Registered extensions run after
// the built-in computation in registration order.
func (s Schedule) Calculate(nights int, accommodationSubtotal money.Amount) []Line {
	var lines []Line
	switch {
	case s.Monthly.applies(nights):
		lines = append(lines, s.tierLine(CodeMonthly, "Monthly", s.Monthly, accommodationSubtotal))
	case s.Weekly.applies(nights):
		lines = append(lines, s.tierLine(CodeWeekly, "Weekly", s.Weekly, accommodationSubtotal))
	}
	for _, ext := range s.Extensions {
		lines = append(lines, ext(nights, accommodationSubtotal)...)
	}
	return lines
}

func (s Schedule) tierLine(code, name string, tier Tier, subtotal money.Amount) Line {
	return Line{
		Code:            code,
		Label:           fmt.Sprintf("%s Discount (%.1f%%)", name, tier.Percent),
		Rate:            tier.Percent,
		Subtotal:        -money.Percent(subtotal, tier.Percent),
		ThresholdNights: tier.ThresholdNights,
	}
}
