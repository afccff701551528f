// Package ratecard holds the static per-country reference data: volume tiers,
// meta costs, currency symbols and the platform-fee schedule.
package ratecard

import (
	"fmt"
	"math"

	"github.com/davidbz/quoter/internal/domain"
)

// Volume band boundaries shared by every table: (0,10k], (10k,50k], (50k,100k], (100k,500k], (500k,+Inf).
//
//nolint:gochecknoglobals // Read-only reference data
var boundaries = []float64{10000, 50000, 100000, 500000}

// bands zips the shared boundaries with one price per band, top band last.
func bands(prices ...float64) []domain.VolumeBand {
	if len(prices) != len(boundaries)+1 {
		panic(fmt.Sprintf("ratecard: want %d prices, got %d", len(boundaries)+1, len(prices)))
	}

	out := make([]domain.VolumeBand, 0, len(prices))
	lower := 0.0
	for i, price := range prices {
		upper := math.Inf(1)
		if i < len(boundaries) {
			upper = boundaries[i]
		}
		out = append(out, domain.VolumeBand{Lower: lower, Upper: upper, Price: price})
		lower = upper
	}
	return out
}

const (
	rupee  = "₹"
	dollar = "$"
)

// Rates returns the reference data of every market.
func Rates() map[domain.Country]domain.CountryRates {
	return map[domain.Country]domain.CountryRates{
		domain.CountryIndia: {
			CurrencySymbol: rupee,
			Meta:           domain.MetaCosts{AI: 0.1150, Marketing: 0.7846, Utility: 0.1150},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(1.00, 0.90, 0.80, 0.70, 0.60),
				domain.MessageAdvanced:       bands(0.50, 0.45, 0.40, 0.35, 0.30),
				domain.MessageBasicMarketing: bands(0.20, 0.18, 0.16, 0.14, 0.12),
				domain.MessageBasicUtility:   bands(0.10, 0.09, 0.08, 0.07, 0.06),
			},
		},
		domain.CountryMENA: {
			CurrencySymbol: dollar,
			Meta:           domain.MetaCosts{AI: 0.0157, Marketing: 0.0384, Utility: 0.0157},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(0.0200, 0.0180, 0.0160, 0.0140, 0.0120),
				domain.MessageAdvanced:       bands(0.0100, 0.0090, 0.0080, 0.0070, 0.0060),
				domain.MessageBasicMarketing: bands(0.0050, 0.0045, 0.0040, 0.0035, 0.0030),
				domain.MessageBasicUtility:   bands(0.0030, 0.0027, 0.0024, 0.0021, 0.0018),
			},
		},
		domain.CountryLATAM: {
			CurrencySymbol: dollar,
			Meta:           domain.MetaCosts{AI: 0.0068, Marketing: 0.0625, Utility: 0.0068},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(0.0180, 0.0160, 0.0140, 0.0120, 0.0100),
				domain.MessageAdvanced:       bands(0.0090, 0.0080, 0.0070, 0.0060, 0.0050),
				domain.MessageBasicMarketing: bands(0.0050, 0.0045, 0.0040, 0.0035, 0.0030),
				domain.MessageBasicUtility:   bands(0.0025, 0.0022, 0.0020, 0.0018, 0.0015),
			},
		},
		domain.CountryAfrica: {
			CurrencySymbol: dollar,
			Meta:           domain.MetaCosts{AI: 0.0040, Marketing: 0.0225, Utility: 0.0040},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(0.0150, 0.0135, 0.0120, 0.0105, 0.0090),
				domain.MessageAdvanced:       bands(0.0075, 0.0068, 0.0060, 0.0053, 0.0045),
				domain.MessageBasicMarketing: bands(0.0040, 0.0036, 0.0032, 0.0028, 0.0024),
				domain.MessageBasicUtility:   bands(0.0020, 0.0018, 0.0016, 0.0014, 0.0012),
			},
		},
		domain.CountryEurope: {
			CurrencySymbol: dollar,
			Meta:           domain.MetaCosts{AI: 0.0318, Marketing: 0.0592, Utility: 0.0318},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(0.0250, 0.0225, 0.0200, 0.0175, 0.0150),
				domain.MessageAdvanced:       bands(0.0120, 0.0108, 0.0096, 0.0084, 0.0072),
				domain.MessageBasicMarketing: bands(0.0060, 0.0054, 0.0048, 0.0042, 0.0036),
				domain.MessageBasicUtility:   bands(0.0035, 0.0032, 0.0028, 0.0025, 0.0021),
			},
		},
		domain.CountryRestOfWorld: {
			CurrencySymbol: dollar,
			Meta:           domain.MetaCosts{AI: 0.0077, Marketing: 0.0604, Utility: 0.0077},
			Tiers: domain.TierTable{
				domain.MessageAI:             bands(0.0160, 0.0144, 0.0128, 0.0112, 0.0096),
				domain.MessageAdvanced:       bands(0.0080, 0.0072, 0.0064, 0.0056, 0.0048),
				domain.MessageBasicMarketing: bands(0.0045, 0.0040, 0.0036, 0.0032, 0.0027),
				domain.MessageBasicUtility:   bands(0.0025, 0.0022, 0.0020, 0.0018, 0.0015),
			},
		},
	}
}

// NewRateBook builds the validated rate book with India as the fallback market.
func NewRateBook() (*domain.RateBook, error) {
	book, err := domain.NewRateBook(domain.CountryIndia, Rates())
	if err != nil {
		return nil, fmt.Errorf("failed to build rate book: %w", err)
	}
	return book, nil
}
