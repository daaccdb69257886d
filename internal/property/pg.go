package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minpaku-dev/pricing-api/internal/fee"
	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/rate"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// PGStore loads property configurations from the properties table.
// Structured columns cover the scalar settings; seasonal overrides,
// weekday rates, day restrictions and tax rules live in JSONB columns.
type PGStore struct {
	Pool *pgxpool.Pool
}

type seasonalRow struct {
	Name      string       `json:"name"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Rate      money.Amount `json:"rate"`
	MinNights int          `json:"min_nights"`
	MaxNights int          `json:"max_nights"`
	Priority  int          `json:"priority"`
}

type taxRow struct {
	Name         string   `json:"name"`
	Rate         float64  `json:"rate"`
	Inclusive    bool     `json:"inclusive"`
	TaxableItems []string `json:"taxable_items"`
}

// Load implements Store. Malformed JSONB payloads surface as a
// ConfigurationError rather than silently pricing with partial data.
func (s PGStore) Load(ctx context.Context, propertyID int64) (Config, error) {
	const q = `
SELECT currency, base_rate, base_capacity, min_nights, max_nights,
       cleaning_fee, service_fee_type, service_fee_percent, service_fee_fixed,
       extra_guest_fee, extra_guest_threshold,
       weekly_discount_percent, weekly_threshold_nights,
       monthly_discount_percent, monthly_threshold_nights,
       weekday_rates, seasonal_rates, checkin_days, checkout_days, taxes
FROM properties
WHERE id = $1`

	cfg := Config{PropertyID: propertyID}
	var (
		weekdayRates []byte
		seasonal     []byte
		checkinDays  []byte
		checkoutDays []byte
		taxes        []byte
	)
	err := s.Pool.QueryRow(ctx, q, propertyID).Scan(
		&cfg.Currency, &cfg.Rate.BaseRate, &cfg.Rate.BaseCapacity,
		&cfg.Rate.MinNights, &cfg.Rate.MaxNights,
		&cfg.Fees.CleaningFee, &cfg.Fees.ServiceFeeType,
		&cfg.Fees.ServiceFeePercent, &cfg.Fees.ServiceFeeFixed,
		&cfg.Fees.ExtraGuestFee, &cfg.Fees.ExtraGuestThreshold,
		&cfg.Discount.Weekly.Percent, &cfg.Discount.Weekly.ThresholdNights,
		&cfg.Discount.Monthly.Percent, &cfg.Discount.Monthly.ThresholdNights,
		&weekdayRates, &seasonal, &checkinDays, &checkoutDays, &taxes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Config{}, &ConfigurationError{PropertyID: propertyID, Err: ErrNotFound}
		}
		return Config{}, &ConfigurationError{PropertyID: propertyID, Err: err}
	}

	cfg.Rate.WeekdayOverrides, err = parseWeekdayRates(weekdayRates)
	if err == nil {
		cfg.Rate.SeasonalOverrides, err = ParseSeasonalRates(seasonal)
	}
	if err == nil {
		cfg.Rate.CheckinDays, err = parseWeekdayList(checkinDays)
	}
	if err == nil {
		cfg.Rate.CheckoutDays, err = parseWeekdayList(checkoutDays)
	}
	if err == nil {
		cfg.Fees.TaxRules, err = ParseTaxRules(taxes)
	}
	if err != nil {
		return Config{}, &ConfigurationError{PropertyID: propertyID, Err: err}
	}
	return ApplyDefaults(cfg), nil
}

// ParseSeasonalRates decodes the seasonal_rates JSONB payload.
func ParseSeasonalRates(data []byte) ([]rate.SeasonalOverride, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []seasonalRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("seasonal_rates: %w", err)
	}
	out := make([]rate.SeasonalOverride, 0, len(rows))
	for _, row := range rows {
		start, err := stay.ParseDate(row.StartDate)
		if err != nil {
			return nil, fmt.Errorf("seasonal_rates %q start: %w", row.Name, err)
		}
		end, err := stay.ParseDate(row.EndDate)
		if err != nil {
			return nil, fmt.Errorf("seasonal_rates %q end: %w", row.Name, err)
		}
		out = append(out, rate.SeasonalOverride{
			Name:      row.Name,
			Start:     start,
			End:       end,
			Rate:      row.Rate,
			MinNights: row.MinNights,
			MaxNights: row.MaxNights,
			Priority:  row.Priority,
		})
	}
	return out, nil
}

// ParseTaxRules decodes the taxes JSONB payload.
func ParseTaxRules(data []byte) ([]fee.TaxRule, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []taxRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("taxes: %w", err)
	}
	out := make([]fee.TaxRule, 0, len(rows))
	for _, row := range rows {
		out = append(out, fee.TaxRule{
			Name:         row.Name,
			Rate:         row.Rate,
			Inclusive:    row.Inclusive,
			TaxableItems: row.TaxableItems,
		})
	}
	return out, nil
}

func parseWeekdayRates(data []byte) (map[time.Weekday]money.Amount, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[string]money.Amount
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("weekday_rates: %w", err)
	}
	out := make(map[time.Weekday]money.Amount, len(raw))
	for name, amount := range raw {
		day, err := parseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("weekday_rates: %w", err)
		}
		out[day] = amount
	}
	return out, nil
}

func parseWeekdayList(data []byte) ([]time.Weekday, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("weekday list: %w", err)
	}
	out := make([]time.Weekday, 0, len(raw))
	for _, name := range raw {
		day, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return day, nil
}
