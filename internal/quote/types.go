package quote

import (
	"github.com/minpaku-dev/pricing-api/internal/fee"
	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/rate"
)

// Line item codes emitted by the engine itself. Discount codes come from
// the discount package and extension hooks may add their own.
const (
	CodeBase       = "base"
	CodeExtraGuest = "extra_guest"
	CodeCleaning   = "cleaning"
	CodeService    = "service"
)

// DailyRate is one night of the accommodation breakdown.
type DailyRate struct {
	Date    string       `json:"date"`
	Weekday string       `json:"weekday"`
	Rate    money.Amount `json:"rate"`
}

// LineItem is one priced component of the quote prior to tax. The
// diagnostic fields are populated only where they apply.
type LineItem struct {
	Code            string       `json:"code"`
	Label           string       `json:"label"`
	Nights          int          `json:"nights,omitempty"`
	Unit            money.Amount `json:"unit,omitempty"`
	Guests          int          `json:"guests,omitempty"`
	Rate            float64      `json:"rate,omitempty"`
	ThresholdNights int          `json:"threshold_nights,omitempty"`
	Subtotal        money.Amount `json:"subtotal"`
	DailyBreakdown  []DailyRate  `json:"daily_breakdown,omitempty"`
}

// Guests echoes the requested party composition.
type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Total    int `json:"total"`
}

// Dates echoes the requested stay window in wire format.
type Dates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// Totals carries the frozen monetary summary of a quote.
type Totals struct {
	SubtotalBeforeDiscounts money.Amount `json:"subtotal_before_discounts"`
	SubtotalAfterDiscounts  money.Amount `json:"subtotal_after_discounts"`
	TotalExclTax            money.Amount `json:"total_excl_tax"`
	TotalTax                money.Amount `json:"total_tax"`
	TotalInclTax            money.Amount `json:"total_incl_tax"`
}

// Quote is the fully itemized price of one stay. It is assembled once and
// never mutated by the engine after return.
type Quote struct {
	PropertyID  int64            `json:"property_id"`
	Currency    string           `json:"currency"`
	Nights      int              `json:"nights"`
	Guests      Guests           `json:"guests"`
	Dates       Dates            `json:"dates"`
	LineItems   []LineItem       `json:"line_items"`
	Taxes       []fee.TaxLine    `json:"taxes"`
	Totals      Totals           `json:"totals"`
	Constraints rate.Constraints `json:"constraints"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
}
