package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewDerivesNights(t *testing.T) {
	req := New(Params{
		PropertyID: 1,
		Checkin:    date("2030-12-01"),
		Checkout:   date("2030-12-03"),
		Adults:     2,
		Currency:   "JPY",
	})
	require.Equal(t, 2, req.Nights)

	inverted := New(Params{PropertyID: 1, Checkin: date("2030-12-03"), Checkout: date("2030-12-01"), Adults: 2})
	require.Equal(t, 0, inverted.Nights)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	today := date("2030-01-01")

	cases := []struct {
		name   string
		params Params
		want   []string
	}{
		{
			name:   "valid",
			params: Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-03"), Adults: 2},
			want:   nil,
		},
		{
			name:   "inverted dates",
			params: Params{PropertyID: 1, Checkin: date("2030-06-03"), Checkout: date("2030-06-01"), Adults: 2},
			want:   []string{"check-out date must be after check-in date"},
		},
		{
			name:   "too long",
			params: Params{PropertyID: 1, Checkin: date("2030-01-01"), Checkout: date("2031-06-01"), Adults: 2},
			want:   []string{"maximum stay period is 366 nights"},
		},
		{
			name:   "no adults",
			params: Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-03")},
			want:   []string{"at least one adult is required"},
		},
		{
			name:   "too many guests",
			params: Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-03"), Adults: 51, Children: 21, Infants: 11},
			want: []string{
				"maximum 50 adults allowed",
				"maximum 20 children allowed",
				"maximum 10 infants allowed",
			},
		},
		{
			name:   "past checkin and bad property",
			params: Params{PropertyID: 0, Checkin: date("2029-12-30"), Checkout: date("2029-12-31"), Adults: 1},
			want:   []string{"invalid property id", "check-in date cannot be in the past"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := New(tc.params)
			require.Equal(t, tc.want, req.Validate(today))
		})
	}
}

func TestGuestCounts(t *testing.T) {
	req := New(Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-02"), Adults: 2, Children: 1, Infants: 1})
	require.Equal(t, 3, req.TotalGuests())
	require.Equal(t, 4, req.AllGuests())
}

func TestDatesIsRestartable(t *testing.T) {
	req := New(Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-04"), Adults: 2})

	collect := func() []string {
		var out []string
		for d := range req.Dates() {
			out = append(out, d.Format(DateFormat))
		}
		return out
	}

	first := collect()
	second := collect()
	require.Equal(t, []string{"2030-06-01", "2030-06-02", "2030-06-03"}, first)
	require.Equal(t, first, second)
}

func TestDatesEarlyBreak(t *testing.T) {
	req := New(Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-30"), Adults: 2})
	count := 0
	for range req.Dates() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestCacheKeyIsDeterministic(t *testing.T) {
	params := Params{PropertyID: 7, Checkin: date("2030-06-01"), Checkout: date("2030-06-03"), Adults: 2, Children: 1, Currency: "JPY"}
	require.Equal(t, New(params).CacheKey(), New(params).CacheKey())
	require.Equal(t, "quote:7:2030-06-01:2030-06-03:2:1:0:JPY", New(params).CacheKey())

	other := params
	other.Adults = 3
	require.NotEqual(t, New(params).CacheKey(), New(other).CacheKey())
}

func TestWeekdays(t *testing.T) {
	// 2030-06-01 is a Saturday.
	req := New(Params{PropertyID: 1, Checkin: date("2030-06-01"), Checkout: date("2030-06-02"), Adults: 1})
	require.Equal(t, time.Saturday, req.CheckinWeekday())
	require.Equal(t, time.Sunday, req.CheckoutWeekday())
}
