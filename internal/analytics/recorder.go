// Package analytics aggregates calculation outcomes into Prometheus metrics
// and an in-memory summary. Nothing here is process-global: every Recorder
// owns its registry.
package analytics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/quoter/internal/config"
	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/observability"
)

const defaultNamespace = "quotation"

// Recorder implements domain.QuoteRecorder.
type Recorder struct {
	registry   *prometheus.Registry
	aggregator *Aggregator
	enabled    bool

	feeQuotesTotal   *prometheus.CounterVec
	quotesTotal      *prometheus.CounterVec
	revenueTotal     *prometheus.CounterVec
	marginPercent    *prometheus.HistogramVec
	validationsTotal *prometheus.CounterVec
	violationsTotal  *prometheus.CounterVec
	bundlesTotal     *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own Prometheus registry.
func NewRecorder(cfg *config.MetricsConfig) (*Recorder, error) {
	namespace := defaultNamespace
	enabled := true
	if cfg != nil {
		enabled = cfg.Enabled
		if cfg.Namespace != "" {
			namespace = cfg.Namespace
		}
	}

	r := &Recorder{
		registry:   prometheus.NewRegistry(),
		aggregator: NewAggregator(),
		enabled:    enabled,
		feeQuotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fee_quotes_total",
				Help:      "Platform fee computations by country and currency.",
			},
			[]string{"country", "currency"},
		),
		quotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Volume quotes calculated by country.",
			},
			[]string{"country"},
		),
		revenueTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quoted_revenue_total",
				Help:      "Sum of quoted revenue (local currency) by country.",
			},
			[]string{"country"},
		),
		marginPercent: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_margin_percent",
				Help:      "Distribution of quoted margin percentage.",
				Buckets:   []float64{-50, 0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
			[]string{"country"},
		),
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "price_validations_total",
				Help:      "Discount-floor validations by country and outcome.",
			},
			[]string{"country", "outcome"},
		),
		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "discount_violations_total",
				Help:      "Discount-floor violations by kind.",
			},
			[]string{"kind"},
		),
		bundlesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bundles_total",
				Help:      "Bundle quotes by country and mode.",
			},
			[]string{"country", "mode"},
		),
	}

	for _, c := range []prometheus.Collector{
		r.feeQuotesTotal,
		r.quotesTotal,
		r.revenueTotal,
		r.marginPercent,
		r.validationsTotal,
		r.violationsTotal,
		r.bundlesTotal,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return r, nil
}

// RecordFee counts a platform fee computation.
func (r *Recorder) RecordFee(ctx context.Context, country domain.Country, quote domain.FeeQuote) {
	r.aggregator.addFee(country)
	if !r.enabled {
		return
	}
	r.feeQuotesTotal.WithLabelValues(countryLabel(country), quote.Currency).Inc()
	observability.FromContext(ctx).Debug("fee recorded")
}

// RecordQuote counts a quote and observes its margin.
func (r *Recorder) RecordQuote(ctx context.Context, result *domain.QuoteResult) {
	if result == nil {
		return
	}
	r.aggregator.addQuote(result)
	if !r.enabled {
		return
	}

	label := countryLabel(result.Country)
	r.quotesTotal.WithLabelValues(label).Inc()
	if result.Revenue > 0 {
		r.revenueTotal.WithLabelValues(label).Add(result.Revenue)
	}
	r.marginPercent.WithLabelValues(label).Observe(result.MarginPercent)
	observability.FromContext(ctx).Debug("quote recorded")
}

// RecordValidation counts a validation and each violation kind.
func (r *Recorder) RecordValidation(ctx context.Context, country domain.Country, violations []domain.Violation) {
	r.aggregator.addValidation(country, violations)
	if !r.enabled {
		return
	}

	outcome := "passed"
	if domain.HasViolations(violations) {
		outcome = "flagged"
	}
	r.validationsTotal.WithLabelValues(countryLabel(country), outcome).Inc()
	for _, v := range violations {
		r.violationsTotal.WithLabelValues(string(v.Kind)).Inc()
	}
	observability.FromContext(ctx).Debug("validation recorded",
		observability.Int("violations", len(violations)))
}

// RecordBundle counts a bundle quote.
func (r *Recorder) RecordBundle(ctx context.Context, quote *domain.BundleQuote) {
	if quote == nil {
		return
	}
	r.aggregator.addBundle(quote)
	if !r.enabled {
		return
	}
	r.bundlesTotal.WithLabelValues(countryLabel(quote.Country), string(quote.Mode)).Inc()
	observability.FromContext(ctx).Debug("bundle recorded")
}

// Summary returns the aggregated totals.
func (r *Recorder) Summary() Summary {
	return r.aggregator.Summary()
}

// Gatherer exposes the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// countryLabel keeps label cardinality bounded to known markets.
func countryLabel(c domain.Country) string {
	for _, known := range domain.KnownCountries {
		if c == known {
			return string(c)
		}
	}
	return "other"
}
