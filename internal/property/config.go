package property

import (
	"context"
	"time"

	"github.com/minpaku-dev/pricing-api/internal/discount"
	"github.com/minpaku-dev/pricing-api/internal/fee"
	"github.com/minpaku-dev/pricing-api/internal/money"
	"github.com/minpaku-dev/pricing-api/internal/rate"
)

// Fallback values applied to incomplete property configurations.
const (
	DefaultBaseRate         money.Amount = 10000
	DefaultCapacity                      = 2
	DefaultMinNights                     = 1
	DefaultCurrency                      = "JPY"
	DefaultWeeklyThreshold               = 7
	DefaultMonthlyThreshold              = 28
)

// Config is the complete pricing configuration of one property.
type Config struct {
	PropertyID int64
	Currency   string
	Rate       rate.Config
	Fees       fee.Schedule
	Discount   discount.Schedule
}

// Store loads property configurations.
type Store interface {
	Load(ctx context.Context, propertyID int64) (Config, error)
}

// ApplyDefaults fills the gaps an operator left unset so that every
// loaded configuration can price a stay. A zero weekly or monthly
// percent keeps that discount disabled but still carries the canonical
// threshold.
func ApplyDefaults(cfg Config) Config {
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.Rate.BaseRate <= 0 {
		cfg.Rate.BaseRate = DefaultBaseRate
	}
	if cfg.Rate.BaseCapacity <= 0 {
		cfg.Rate.BaseCapacity = DefaultCapacity
	}
	if cfg.Rate.MinNights <= 0 {
		cfg.Rate.MinNights = DefaultMinNights
	}
	if len(cfg.Rate.CheckinDays) == 0 {
		cfg.Rate.CheckinDays = allWeekdays()
	}
	if len(cfg.Rate.CheckoutDays) == 0 {
		cfg.Rate.CheckoutDays = allWeekdays()
	}
	if cfg.Fees.ServiceFeeType == "" {
		cfg.Fees.ServiceFeeType = fee.ServiceFeePercent
	}
	if len(cfg.Fees.TaxRules) == 0 {
		cfg.Fees.TaxRules = fee.DefaultTaxRules()
	}
	if cfg.Discount.Weekly.ThresholdNights <= 0 {
		cfg.Discount.Weekly.ThresholdNights = DefaultWeeklyThreshold
	}
	if cfg.Discount.Monthly.ThresholdNights <= 0 {
		cfg.Discount.Monthly.ThresholdNights = DefaultMonthlyThreshold
	}
	return cfg
}

func allWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
