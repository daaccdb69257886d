package fee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceFee(t *testing.T) {
	percent := Schedule{ServiceFeeType: ServiceFeePercent, ServiceFeePercent: 10}
	require.Equal(t, int64(2000), percent.ServiceFee(20000))
	require.Equal(t, int64(0), percent.ServiceFee(0))

	fixed := Schedule{ServiceFeeType: ServiceFeeFixed, ServiceFeeFixed: 1500}
	require.Equal(t, int64(1500), fixed.ServiceFee(20000))
	require.Equal(t, int64(1500), fixed.ServiceFee(0))
}

func TestServiceFeeLabel(t *testing.T) {
	percent := Schedule{ServiceFeeType: ServiceFeePercent, ServiceFeePercent: 12.5}
	require.Equal(t, "Service Fee (12.5%)", percent.ServiceFeeLabel())

	fixed := Schedule{ServiceFeeType: ServiceFeeFixed, ServiceFeeFixed: 1500}
	require.Equal(t, "Service Fee", fixed.ServiceFeeLabel())
}

func TestExtraGuestFee(t *testing.T) {
	s := Schedule{ExtraGuestFee: 2000, ExtraGuestThreshold: 2}

	cases := []struct {
		name   string
		guests int
		nights int
		want   int64
	}{
		{"below threshold", 1, 2, 0},
		{"at threshold", 2, 2, 0},
		{"one extra", 3, 2, 4000},
		{"two extra", 4, 2, 8000},
		{"scales with nights", 3, 5, 10000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, s.ExtraGuestCharge(tc.guests, tc.nights))
		})
	}

	disabled := Schedule{ExtraGuestFee: 2000}
	require.Equal(t, int64(0), disabled.ExtraGuestCharge(10, 2))
}

func TestTaxesExclusive(t *testing.T) {
	s := Schedule{TaxRules: []TaxRule{
		{Name: "Consumption Tax (10%)", Rate: 10, TaxableItems: []string{"base"}},
	}}
	lines := s.Taxes([]Item{
		{Code: "base", Subtotal: 10000},
		{Code: "cleaning", Subtotal: 5000},
	})
	require.Len(t, lines, 1)
	require.Equal(t, int64(10000), lines[0].TaxableAmount)
	require.Equal(t, int64(1000), lines[0].Amount)
	require.False(t, lines[0].Inclusive)
}

func TestTaxesInclusiveBackCalculation(t *testing.T) {
	s := Schedule{TaxRules: []TaxRule{
		{Name: "Included Tax (10%)", Rate: 10, Inclusive: true, TaxableItems: []string{"base"}},
	}}
	lines := s.Taxes([]Item{{Code: "base", Subtotal: 11000}})
	require.Len(t, lines, 1)
	require.Equal(t, int64(11000), lines[0].TaxableAmount)
	require.Equal(t, int64(1000), lines[0].Amount)
	require.True(t, lines[0].Inclusive)
}

func TestTaxesSkipNonPositiveBase(t *testing.T) {
	s := Schedule{TaxRules: []TaxRule{
		{Name: "Lodging Tax", Rate: 5, TaxableItems: []string{"base", "weekly"}},
		{Name: "City Tax", Rate: 3, TaxableItems: []string{"service"}},
	}}
	lines := s.Taxes([]Item{
		{Code: "base", Subtotal: 10000},
		{Code: "weekly", Subtotal: -10000},
	})
	require.Empty(t, lines)
}

func TestTaxesMultipleRulesRoundedIndependently(t *testing.T) {
	s := Schedule{TaxRules: []TaxRule{
		{Name: "A", Rate: 10, TaxableItems: []string{"base"}},
		{Name: "B", Rate: 8, TaxableItems: []string{"base", "cleaning"}},
	}}
	lines := s.Taxes([]Item{
		{Code: "base", Subtotal: 10005},
		{Code: "cleaning", Subtotal: 3000},
	})
	require.Len(t, lines, 2)
	// 10005 * 10% = 1000.5 rounds half to even.
	require.Equal(t, int64(1000), lines[0].Amount)
	// 13005 * 8% = 1040.4.
	require.Equal(t, int64(1040), lines[1].Amount)
}

func TestTaxesEmptyItemSetMatchesEveryCode(t *testing.T) {
	s := Schedule{TaxRules: DefaultTaxRules()}
	lines := s.Taxes([]Item{
		{Code: "base", Subtotal: 20000},
		{Code: "cleaning", Subtotal: 3000},
		{Code: "anything", Subtotal: 1000},
	})
	require.Len(t, lines, 1)
	require.Equal(t, int64(24000), lines[0].TaxableAmount)
	require.Equal(t, int64(2400), lines[0].Amount)
}
