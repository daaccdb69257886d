package promo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/quote"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

func day(s string) time.Time {
	d, err := stay.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func req(checkin, checkout string) stay.Request {
	return stay.New(stay.Params{
		PropertyID: 7,
		Checkin:    day(checkin),
		Checkout:   day(checkout),
		Adults:     2,
		Currency:   "JPY",
	})
}

func TestEarlyBird(t *testing.T) {
	now := func() time.Time { return day("2030-05-01") }
	transform := EarlyBird(5, 30, now)
	items := []quote.LineItem{{Code: quote.CodeBase, Subtotal: 70000}}

	t.Run("fires for distant check-in", func(t *testing.T) {
		out := transform(items, req("2030-06-01", "2030-06-08"))
		require.Len(t, out, 2)
		require.Equal(t, CodeEarlyBird, out[1].Code)
		require.Equal(t, "Early Bird Discount (5%)", out[1].Label)
		require.Equal(t, money.Amount(-3500), out[1].Subtotal)
	})

	t.Run("skips near check-in", func(t *testing.T) {
		out := transform(items, req("2030-05-15", "2030-05-22"))
		require.Len(t, out, 1)
	})

	t.Run("skips when no accommodation item exists", func(t *testing.T) {
		out := transform([]quote.LineItem{{Code: quote.CodeCleaning, Subtotal: 5000}}, req("2030-06-01", "2030-06-08"))
		require.Len(t, out, 1)
	})
}

func TestAnnotate(t *testing.T) {
	now := func() time.Time { return day("2030-05-02") }
	transform := Annotate("pricing-api v1.0", now)

	q := transform(quote.Quote{}, req("2030-06-01", "2030-06-08"))
	require.Equal(t, "pricing-api v1.0", q.Metadata["generator"])
	require.Equal(t, "2030-05-02T00:00:00Z", q.Metadata["generated_at"])
	require.Equal(t, 30, q.Metadata["booking_window_days"])
	require.Equal(t, "Great choice! You're getting our weekly discount.", q.Metadata["promotional_message"])

	short := transform(quote.Quote{}, req("2030-06-01", "2030-06-03"))
	_, ok := short.Metadata["promotional_message"]
	require.False(t, ok)
}

func TestAnnotatePreservesExistingMetadata(t *testing.T) {
	transform := Annotate("pricing-api v1.0", func() time.Time { return day("2030-05-02") })
	q := transform(quote.Quote{Metadata: map[string]any{"channel": "direct"}}, req("2030-06-01", "2030-06-03"))
	require.Equal(t, "direct", q.Metadata["channel"])
}
