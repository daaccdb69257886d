// Package promo ships the stock promotional hooks a host can register
// with the quote engine.
package promo

import (
	"fmt"
	"time"

	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/quote"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// CodeEarlyBird marks the early-booking discount line.
const CodeEarlyBird = "early_bird"

// EarlyBird builds a line-item transform that discounts the
// accommodation charge for bookings made at least minDaysAhead before
// check-in. The discount rides the hook stage, so frozen totals are
// deliberately left untouched.
func EarlyBird(percent float64, minDaysAhead int, now func() time.Time) quote.LineItemTransform {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return func(items []quote.LineItem, req stay.Request) []quote.LineItem {
		if bookingWindowDays(now(), req.Checkin) < minDaysAhead {
			return items
		}
		for _, item := range items {
			if item.Code != quote.CodeBase {
				continue
			}
			return append(items, quote.LineItem{
				Code:     CodeEarlyBird,
				Label:    fmt.Sprintf("Early Bird Discount (%.0f%%)", percent),
				Rate:     percent,
				Subtotal: -money.Percent(item.Subtotal, percent),
			})
		}
		return items
	}
}

// Annotate builds a quote transform that stamps generation metadata and a
// promotional message for week-long stays.
func Annotate(generator string, now func() time.Time) quote.QuoteTransform {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return func(q quote.Quote, req stay.Request) quote.Quote {
		meta := make(map[string]any, len(q.Metadata)+4)
		for k, v := range q.Metadata {
			meta[k] = v
		}
		ts := now()
		meta["generated_at"] = ts.Format(time.RFC3339)
		meta["generator"] = generator
		meta["booking_window_days"] = bookingWindowDays(ts, req.Checkin)
		if req.Nights >= 7 {
			meta["promotional_message"] = "Great choice! You're getting our weekly discount."
		}
		q.Metadata = meta
		return q
	}
}

func bookingWindowDays(now, checkin time.Time) int {
	days := int(checkin.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
