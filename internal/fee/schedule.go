package fee

import (
	"fmt"

	"github.com/minpaku-dev/pricing-api/internal/money"
)

// Service fee modes.
const (
	ServiceFeePercent = "percent"
	ServiceFeeFixed   = "fixed"
)

// TaxRule is a named percentage tax applied to a configurable subset of
// line-item codes. An empty TaxableItems set matches every code.
type TaxRule struct {
	Name         string   `json:"name"`
	Rate         float64  `json:"rate"`
	Inclusive    bool     `json:"inclusive"`
	TaxableItems []string `json:"taxable_items"`
}

func (t TaxRule) appliesTo(code string) bool {
	if len(t.TaxableItems) == 0 {
		return true
	}
	for _, item := range t.TaxableItems {
		if item == code {
			return true
		}
	}
	return false
}

// DefaultTaxRules is the fallback applied when a property configures no
// taxes: a single 10% exclusive consumption tax over every item code.
func DefaultTaxRules() []TaxRule {
	return []TaxRule{{
		Name:      "Consumption Tax (10%)",
		Rate:      10,
		Inclusive: false,
	}}
}

// Item is the minimal view of a line item needed for tax calculation.
type Item struct {
	Code     string
	Subtotal money.Amount
}

// TaxLine is one computed tax amount.
type TaxLine struct {
	Label         string       `json:"label"`
	Rate          float64      `json:"rate"`
	TaxableAmount money.Amount `json:"taxable_amount"`
	Amount        money.Amount `json:"amount"`
	Inclusive     bool         `json:"inclusive"`
}

// Schedule holds the fee and tax configuration of one property.
type Schedule struct {
	CleaningFee         money.Amount
	ServiceFeeType      string
	ServiceFeePercent   float64
	ServiceFeeFixed     money.Amount
	ExtraGuestFee       money.Amount
	ExtraGuestThreshold int
	TaxRules            []TaxRule
}

// ServiceFee computes the service fee over subtotal. Percent mode applies
// the configured rate; fixed mode charges the flat value regardless of the
// subtotal.
func (s Schedule) ServiceFee(subtotal money.Amount) money.Amount {
	if s.ServiceFeeType == ServiceFeeFixed {
		return s.ServiceFeeFixed
	}
	return money.Percent(subtotal, s.ServiceFeePercent)
}

// ServiceFeeLabel renders the display label for the service fee line.
func (s Schedule) ServiceFeeLabel() string {
	if s.ServiceFeeType == ServiceFeeFixed {
		return "Service Fee"
	}
	return fmt.Sprintf("Service Fee (%.1f%%)", s.ServiceFeePercent)
}

// ExtraGuestCharge charges for guests above the threshold, per guest per
// night. A threshold of zero disables the fee entirely.
func (s Schedule) ExtraGuestCharge(totalGuests, nights int) money.Amount {
	if s.ExtraGuestThreshold <= 0 || totalGuests <= s.ExtraGuestThreshold {
		return 0
	}
	extra := totalGuests - s.ExtraGuestThreshold
	return money.Amount(extra) * s.ExtraGuestFee * money.Amount(nights)
}

// Taxes evaluates every configured tax rule, in order, against the
// original line-item subtotals. Tax is never computed on previously
// computed tax. Rules whose taxable base is not positive are skipped, and
// each amount is rounded independently.
func (s Schedule) Taxes(items []Item) []TaxLine {
	var lines []TaxLine
	for _, rule := range s.TaxRules {
		var taxable money.Amount
		for _, item := range items {
			if rule.appliesTo(item.Code) {
				taxable += item.Subtotal
			}
		}
		if taxable <= 0 {
			continue
		}

		var amount money.Amount
		if rule.Inclusive {
			amount = money.InclusivePortion(taxable, rule.Rate)
		} else {
			amount = money.Percent(taxable, rule.Rate)
		}
		lines = append(lines, TaxLine{
			Label:         rule.Name,
			Rate:          rule.Rate,
			TaxableAmount: taxable,
			Amount:        amount,
			Inclusive:     rule.Inclusive,
		})
	}
	return lines
}
