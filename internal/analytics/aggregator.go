package analytics

import (
	"sync"

	"github.com/davidbz/quoter/internal/domain"
)

// CountrySummary aggregates the quotes calculated for one market.
type CountrySummary struct {
	Quotes             int     `json:"quotes"`
	Bundles            int     `json:"bundles"`
	FeeQuotes          int     `json:"fee_quotes"`
	Validations        int     `json:"validations"`
	RejectedValidation int     `json:"rejected_validations"`
	Revenue            float64 `json:"revenue"`
	SuggestedRevenue   float64 `json:"suggested_revenue"`
	TotalCost          float64 `json:"total_cost"`
	BundleTotal        float64 `json:"bundle_total"`
	AverageMargin      float64 `json:"average_margin_percent"`

	marginSum float64
}

// Summary is a point-in-time snapshot of the aggregator.
type Summary struct {
	Quotes     int                               `json:"quotes"`
	Violations map[domain.ViolationKind]int      `json:"violations"`
	Bundles    map[domain.BundleMode]int         `json:"bundles"`
	Countries  map[domain.Country]CountrySummary `json:"countries"`
}

// Aggregator keeps running totals of calculations in memory.
type Aggregator struct {
	mu         sync.Mutex
	quotes     int
	violations map[domain.ViolationKind]int
	bundles    map[domain.BundleMode]int
	countries  map[domain.Country]*CountrySummary
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		mu:         sync.Mutex{},
		violations: make(map[domain.ViolationKind]int),
		bundles:    make(map[domain.BundleMode]int),
		countries:  make(map[domain.Country]*CountrySummary),
	}
}

func (a *Aggregator) country(c domain.Country) *CountrySummary {
	cs, ok := a.countries[c]
	if !ok {
		cs = &CountrySummary{}
		a.countries[c] = cs
	}
	return cs
}

func (a *Aggregator) addFee(c domain.Country) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.country(c).FeeQuotes++
}

func (a *Aggregator) addQuote(result *domain.QuoteResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.quotes++
	cs := a.country(result.Country)
	cs.Quotes++
	cs.Revenue += result.Revenue
	cs.SuggestedRevenue += result.SuggestedRevenue
	cs.TotalCost += result.TotalCost
	cs.marginSum += result.MarginPercent
	cs.AverageMargin = cs.marginSum / float64(cs.Quotes)
}

func (a *Aggregator) addValidation(c domain.Country, violations []domain.Violation) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cs := a.country(c)
	cs.Validations++
	if len(violations) > 0 {
		cs.RejectedValidation++
	}
	for _, v := range violations {
		a.violations[v.Kind]++
	}
}

func (a *Aggregator) addBundle(quote *domain.BundleQuote) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bundles[quote.Mode]++
	cs := a.country(quote.Country)
	cs.Bundles++
	cs.BundleTotal += quote.GrandTotal
}

// Summary returns a copy of the current totals.
func (a *Aggregator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Summary{
		Quotes:     a.quotes,
		Violations: make(map[domain.ViolationKind]int, len(a.violations)),
		Bundles:    make(map[domain.BundleMode]int, len(a.bundles)),
		Countries:  make(map[domain.Country]CountrySummary, len(a.countries)),
	}
	for k, v := range a.violations {
		s.Violations[k] = v
	}
	for k, v := range a.bundles {
		s.Bundles[k] = v
	}
	for k, v := range a.countries {
		s.Countries[k] = *v
	}
	return s
}
