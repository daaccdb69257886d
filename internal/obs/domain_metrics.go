package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteCalculationsTotal counts quote pipeline outcomes by result.
	QuoteCalculationsTotal *prometheus.CounterVec
	// QuoteCalcDuration records quote pipeline latency in milliseconds.
	QuoteCalcDuration prometheus.Histogram
	// QuoteCacheTotal counts quote cache lookups by result.
	QuoteCacheTotal *prometheus.CounterVec
	// AvailabilityLookupsTotal counts occupancy oracle consultations by outcome.
	AvailabilityLookupsTotal *prometheus.CounterVec
)

// Quote calculation results used as metric label values.
const (
	ResultPriced             = "priced"
	ResultValidationError    = "validation_error"
	ResultConstraintError    = "constraint_error"
	ResultAvailabilityError  = "availability_error"
	ResultConfigurationError = "configuration_error"
	ResultInternalError      = "internal_error"
)

// MustRegisterDomainMetrics initialises and registers the pricing-specific
// Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteCalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_calculations_total",
			Help:      "Count of quote calculations by outcome.",
		}, []string{"result"})
		QuoteCalcDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_calculation_duration_ms",
			Help:      "Quote pipeline latency in milliseconds.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		})
		QuoteCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_cache_total",
			Help:      "Count of quote cache lookups by result.",
		}, []string{"result"})
		AvailabilityLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_lookups_total",
			Help:      "Count of occupancy oracle lookups by outcome.",
		}, []string{"result"})

		mustRegisterCollector(reg, QuoteCalculationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteCalculationsTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteCalcDuration, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				QuoteCalcDuration = v
			}
		})
		mustRegisterCollector(reg, QuoteCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteCacheTotal = v
			}
		})
		mustRegisterCollector(reg, AvailabilityLookupsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				AvailabilityLookupsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
