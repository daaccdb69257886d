package quote

import "github.com/minpaku-dev/pricing-api/internal/stay"

// LineItemTransform rewrites the line items of a quote in flight. It runs
// after totals are computed; changes it makes are not reflected in them.
type LineItemTransform func(items []LineItem, req stay.Request) []LineItem

// QuoteTransform rewrites the assembled quote, typically to annotate
// metadata.
type QuoteTransform func(q Quote, req stay.Request) Quote

// Hooks is the ordered set of transforms a host registers with the
// engine. Hooks run synchronously in registration order and are
// unguarded: a failing hook propagates to the caller.
type Hooks struct {
	LineItems []LineItemTransform
	Quotes    []QuoteTransform
}
