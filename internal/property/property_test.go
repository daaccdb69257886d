package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/minpaku-dev/pricing-api/internal/fee"
	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/rate"
)

func TestApplyDefaults(t *testing.T) {
	cfg := ApplyDefaults(Config{PropertyID: 7})

	require.Equal(t, "JPY", cfg.Currency)
	require.Equal(t, money.Amount(10000), cfg.Rate.BaseRate)
	require.Equal(t, 2, cfg.Rate.BaseCapacity)
	require.Equal(t, 1, cfg.Rate.MinNights)
	require.Equal(t, 0, cfg.Rate.MaxNights)
	require.Len(t, cfg.Rate.CheckinDays, 7)
	require.Len(t, cfg.Rate.CheckoutDays, 7)
	require.Equal(t, fee.ServiceFeePercent, cfg.Fees.ServiceFeeType)
	require.Equal(t, fee.DefaultTaxRules(), cfg.Fees.TaxRules)
	require.Equal(t, 7, cfg.Discount.Weekly.ThresholdNights)
	require.Equal(t, 28, cfg.Discount.Monthly.ThresholdNights)
	// Discounts stay disabled without an explicit percentage.
	require.Zero(t, cfg.Discount.Weekly.Percent)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := ApplyDefaults(Config{
		Currency: "USD",
		Rate: rate.Config{
			BaseRate:     25000,
			BaseCapacity: 6,
			MinNights:    3,
			CheckinDays:  []time.Weekday{time.Saturday},
		},
		Fees: fee.Schedule{
			ServiceFeeType: fee.ServiceFeeFixed,
			TaxRules:       []fee.TaxRule{{Name: "Lodging Tax", Rate: 5}},
		},
	})

	require.Equal(t, "USD", cfg.Currency)
	require.Equal(t, money.Amount(25000), cfg.Rate.BaseRate)
	require.Equal(t, 6, cfg.Rate.BaseCapacity)
	require.Equal(t, 3, cfg.Rate.MinNights)
	require.Equal(t, []time.Weekday{time.Saturday}, cfg.Rate.CheckinDays)
	require.Equal(t, fee.ServiceFeeFixed, cfg.Fees.ServiceFeeType)
	require.Len(t, cfg.Fees.TaxRules, 1)
	require.Equal(t, "Lodging Tax", cfg.Fees.TaxRules[0].Name)
}

func TestStaticStore(t *testing.T) {
	store := StaticStore{Configs: map[int64]Config{
		7: {Rate: rate.Config{BaseRate: 20000}},
	}}

	cfg, err := store.Load(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.PropertyID)
	require.Equal(t, money.Amount(20000), cfg.Rate.BaseRate)
	require.Equal(t, "JPY", cfg.Currency)

	_, err = store.Load(context.Background(), 99)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, int64(99), cfgErr.PropertyID)
}

func TestParseSeasonalRates(t *testing.T) {
	data := []byte(`[
		{"name":"Summer Peak","start_date":"2030-07-01","end_date":"2030-08-31","rate":18000,"min_nights":2,"priority":10},
		{"name":"Festival","start_date":"2030-08-10","end_date":"2030-08-15","rate":30000,"priority":20}
	]`)
	overrides, err := ParseSeasonalRates(data)
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	require.Equal(t, "Summer Peak", overrides[0].Name)
	require.Equal(t, money.Amount(18000), overrides[0].Rate)
	require.Equal(t, 2, overrides[0].MinNights)
	require.Equal(t, time.July, overrides[0].Start.Month())
	require.Equal(t, 20, overrides[1].Priority)

	overrides, err = ParseSeasonalRates(nil)
	require.NoError(t, err)
	require.Empty(t, overrides)
}

func TestParseSeasonalRatesMalformed(t *testing.T) {
	_, err := ParseSeasonalRates([]byte(`{"not":"a list"}`))
	require.Error(t, err)

	_, err = ParseSeasonalRates([]byte(`[{"name":"Bad","start_date":"07/01/2030","end_date":"2030-08-31","rate":1}]`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Bad")
}

func TestParseTaxRules(t *testing.T) {
	data := []byte(`[
		{"name":"Consumption Tax (10%)","rate":10,"taxable_items":["base","cleaning"]},
		{"name":"Included Levy","rate":5,"inclusive":true}
	]`)
	rules, err := ParseTaxRules(data)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	require.Equal(t, float64(10), rules[0].Rate)
	require.Equal(t, []string{"base", "cleaning"}, rules[0].TaxableItems)
	require.True(t, rules[1].Inclusive)
	require.Empty(t, rules[1].TaxableItems)

	_, err = ParseTaxRules([]byte(`"oops"`))
	require.Error(t, err)
}

func TestParseWeekdayHelpers(t *testing.T) {
	rates, err := parseWeekdayRates([]byte(`{"friday":15000,"Saturday":18000}`))
	require.NoError(t, err)
	require.Equal(t, money.Amount(15000), rates[time.Friday])
	require.Equal(t, money.Amount(18000), rates[time.Saturday])

	_, err = parseWeekdayRates([]byte(`{"caturday":1}`))
	require.Error(t, err)

	days, err := parseWeekdayList([]byte(`["monday","friday"]`))
	require.NoError(t, err)
	require.Equal(t, []time.Weekday{time.Monday, time.Friday}, days)

	days, err = parseWeekdayList(nil)
	require.NoError(t, err)
	require.Empty(t, days)
}

func TestConfigurationErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ConfigurationError{PropertyID: 3, Err: inner}
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "property 3")
}
