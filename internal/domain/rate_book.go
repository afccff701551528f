package domain

import (
	"errors"
	"fmt"
	"slices"
)

const defaultCurrencySymbol = "$"

var (
	// ErrInvalidBands indicates a tier table that does not partition [0, +Inf).
	ErrInvalidBands = errors.New("invalid volume bands")

	// ErrMissingCountry indicates the fallback country has no rates.
	ErrMissingCountry = errors.New("fallback country not found")
)

// TierTable holds the ordered volume bands of each message type.
type TierTable map[MessageType][]VolumeBand

// CountryRates is the reference data of one market.
type CountryRates struct {
	CurrencySymbol string
	Meta           MetaCosts
	Tiers          TierTable
}

// RateBook is the immutable rate card for every market.
// It is safe for concurrent use because nothing mutates it after NewRateBook returns.
type RateBook struct {
	countries map[Country]CountryRates
	fallback  Country
}

// NewRateBook validates and copies the given rates.
// Meta costs of unknown countries resolve to the fallback country's.
func NewRateBook(fallback Country, rates map[Country]CountryRates) (*RateBook, error) {
	if _, ok := rates[fallback]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCountry, fallback)
	}

	countries := make(map[Country]CountryRates, len(rates))
	for country, cr := range rates {
		tiers := make(TierTable, len(cr.Tiers))
		for messageType, bands := range cr.Tiers {
			if err := validateBands(bands); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", country, messageType, err)
			}
			tiers[messageType] = slices.Clone(bands)
		}
		countries[country] = CountryRates{
			CurrencySymbol: cr.CurrencySymbol,
			Meta:           cr.Meta,
			Tiers:          tiers,
		}
	}

	return &RateBook{
		countries: countries,
		fallback:  fallback,
	}, nil
}

func validateBands(bands []VolumeBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidBands)
	}
	if bands[0].Lower != 0 {
		return fmt.Errorf("%w: first band starts at %v", ErrInvalidBands, bands[0].Lower)
	}
	for i, band := range bands {
		if band.Upper <= band.Lower {
			return fmt.Errorf("%w: band %d is empty", ErrInvalidBands, i)
		}
		if i > 0 && bands[i-1].Upper != band.Lower {
			return fmt.Errorf("%w: gap or overlap before band %d", ErrInvalidBands, i)
		}
	}
	if !bands[len(bands)-1].Unbounded() {
		return fmt.Errorf("%w: last band is bounded", ErrInvalidBands)
	}
	return nil
}

// Countries returns the markets in the book, known markets first.
func (b *RateBook) Countries() []Country {
	out := make([]Country, 0, len(b.countries))
	for _, c := range KnownCountries {
		if _, ok := b.countries[c]; ok {
			out = append(out, c)
		}
	}

	var extra []Country
	for c := range b.countries {
		if !slices.Contains(KnownCountries, c) {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)

	return append(out, extra...)
}

// Bands returns a copy of the bands for a country and message type.
func (b *RateBook) Bands(country Country, messageType MessageType) []VolumeBand {
	return slices.Clone(b.bands(country, messageType))
}

func (b *RateBook) bands(country Country, messageType MessageType) []VolumeBand {
	cr, ok := b.countries[country]
	if !ok {
		return nil
	}
	return cr.Tiers[messageType]
}

// SuggestedPrice returns the price of the band where lower < volume <= upper, or 0.
func (b *RateBook) SuggestedPrice(country Country, messageType MessageType, volume float64) float64 {
	for _, band := range b.bands(country, messageType) {
		if band.Contains(volume) {
			return band.Price
		}
	}
	return 0
}

// OveragePrice returns the next band's price, or the current one at the top band.
// When no band contains volume the first band's price is returned.
func (b *RateBook) OveragePrice(country Country, messageType MessageType, volume float64) float64 {
	bands := b.bands(country, messageType)
	for i, band := range bands {
		if !band.Contains(volume) {
			continue
		}
		if i+1 < len(bands) {
			return bands[i+1].Price
		}
		return band.Price
	}
	if len(bands) > 0 {
		return bands[0].Price
	}
	return 0
}

// DisplayPrice substitutes the lowest band's price for a zero volume.
func (b *RateBook) DisplayPrice(country Country, messageType MessageType, volume float64) float64 {
	bands := b.bands(country, messageType)
	if volume == 0 && len(bands) > 0 {
		return bands[0].Price
	}
	return b.SuggestedPrice(country, messageType, volume)
}

// MetaCosts returns the country's meta costs, falling back to the default market.
func (b *RateBook) MetaCosts(country Country) MetaCosts {
	if cr, ok := b.countries[country]; ok {
		return cr.Meta
	}
	return b.countries[b.fallback].Meta
}

// CurrencySymbol returns the country's display symbol, or "$" when unknown.
func (b *RateBook) CurrencySymbol(country Country) string {
	if cr, ok := b.countries[country]; ok && cr.CurrencySymbol != "" {
		return cr.CurrencySymbol
	}
	return defaultCurrencySymbol
}
