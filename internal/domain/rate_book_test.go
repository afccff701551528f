package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/ratecard"
)

func newTestBook(t *testing.T) *domain.RateBook {
	t.Helper()
	book, err := ratecard.NewRateBook()
	require.NoError(t, err)
	return book
}

func TestRateBook_SuggestedPrice(t *testing.T) {
	book := newTestBook(t)

	tests := []struct {
		name     string
		volume   float64
		expected float64
	}{
		{name: "inside first band", volume: 5000, expected: 1.00},
		{name: "upper bound is inclusive", volume: 10000, expected: 1.00},
		{name: "just above boundary moves to next band", volume: 10001, expected: 0.90},
		{name: "top band", volume: 2000000, expected: 0.60},
		{name: "zero volume matches nothing", volume: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := book.SuggestedPrice(domain.CountryIndia, domain.MessageAI, tt.volume)
			require.InDelta(t, tt.expected, price, 1e-9)
		})
	}

	t.Run("unknown country returns zero", func(t *testing.T) {
		require.Zero(t, book.SuggestedPrice("Atlantis", domain.MessageAI, 5000))
	})
}

func TestRateBook_OveragePrice(t *testing.T) {
	book := newTestBook(t)

	t.Run("should return the next band's price", func(t *testing.T) {
		require.InDelta(t, 0.90, book.OveragePrice(domain.CountryIndia, domain.MessageAI, 5000), 1e-9)
		require.InDelta(t, 0.80, book.OveragePrice(domain.CountryIndia, domain.MessageAI, 10001), 1e-9)
	})

	t.Run("should return the current price in the top band", func(t *testing.T) {
		require.InDelta(t, 0.60, book.OveragePrice(domain.CountryIndia, domain.MessageAI, 600000), 1e-9)
	})

	t.Run("should fall back to the first band when no band matches", func(t *testing.T) {
		require.InDelta(t, 1.00, book.OveragePrice(domain.CountryIndia, domain.MessageAI, 0), 1e-9)
	})

	t.Run("should return zero for unknown country", func(t *testing.T) {
		require.Zero(t, book.OveragePrice("Atlantis", domain.MessageAI, 5000))
	})

	t.Run("should equal the next band for every table", func(t *testing.T) {
		for _, country := range book.Countries() {
			for _, messageType := range domain.MessageTypes {
				bands := book.Bands(country, messageType)
				for i, band := range bands {
					volume := band.Lower + 1
					expected := band.Price
					if i+1 < len(bands) {
						expected = bands[i+1].Price
					}
					require.InDelta(t, expected, book.OveragePrice(country, messageType, volume), 1e-9,
						"%s/%s band %d", country, messageType, i)
				}
			}
		}
	})
}

func TestRateBook_DisplayPrice(t *testing.T) {
	book := newTestBook(t)

	require.InDelta(t, 1.00, book.DisplayPrice(domain.CountryIndia, domain.MessageAI, 0), 1e-9)
	require.InDelta(t, 0.90, book.DisplayPrice(domain.CountryIndia, domain.MessageAI, 20000), 1e-9)
	require.Zero(t, book.DisplayPrice("Atlantis", domain.MessageAI, 0))
}

func TestRateBook_MetaCosts(t *testing.T) {
	book := newTestBook(t)

	india := book.MetaCosts(domain.CountryIndia)
	require.InDelta(t, 0.1150, india.AI, 1e-9)
	require.InDelta(t, 0.7846, india.Marketing, 1e-9)
	require.InDelta(t, 0.1150, india.Utility, 1e-9)

	t.Run("unknown country falls back to India", func(t *testing.T) {
		require.Equal(t, india, book.MetaCosts("Atlantis"))
	})

	t.Run("advanced uses the AI meta cost", func(t *testing.T) {
		require.InDelta(t, india.AI, india.For(domain.MessageAdvanced), 1e-9)
	})
}

func TestRateBook_CurrencySymbol(t *testing.T) {
	book := newTestBook(t)

	require.Equal(t, "₹", book.CurrencySymbol(domain.CountryIndia))
	require.Equal(t, "$", book.CurrencySymbol(domain.CountryEurope))
	require.Equal(t, "$", book.CurrencySymbol("Atlantis"))
}

func TestRateBook_Countries(t *testing.T) {
	book := newTestBook(t)
	require.Equal(t, domain.KnownCountries, book.Countries())
}

func TestRateBook_BandsAreCopies(t *testing.T) {
	book := newTestBook(t)

	bands := book.Bands(domain.CountryIndia, domain.MessageAI)
	bands[0].Price = 42

	require.InDelta(t, 1.00, book.SuggestedPrice(domain.CountryIndia, domain.MessageAI, 1), 1e-9)
}

func TestNewRateBook_Validation(t *testing.T) {
	inf := math.Inf(1)
	build := func(bands []domain.VolumeBand) map[domain.Country]domain.CountryRates {
		return map[domain.Country]domain.CountryRates{
			domain.CountryIndia: {
				CurrencySymbol: "₹",
				Tiers:          domain.TierTable{domain.MessageAI: bands},
			},
		}
	}

	tests := []struct {
		name  string
		bands []domain.VolumeBand
	}{
		{name: "no bands", bands: nil},
		{name: "first band not at zero", bands: []domain.VolumeBand{{Lower: 1, Upper: inf, Price: 1}}},
		{name: "empty band", bands: []domain.VolumeBand{{Lower: 0, Upper: 0, Price: 1}}},
		{
			name: "gap between bands",
			bands: []domain.VolumeBand{
				{Lower: 0, Upper: 10, Price: 1},
				{Lower: 20, Upper: inf, Price: 1},
			},
		},
		{
			name: "overlapping bands",
			bands: []domain.VolumeBand{
				{Lower: 0, Upper: 10, Price: 1},
				{Lower: 5, Upper: inf, Price: 1},
			},
		},
		{name: "bounded top band", bands: []domain.VolumeBand{{Lower: 0, Upper: 10, Price: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := domain.NewRateBook(domain.CountryIndia, build(tt.bands))
			require.ErrorIs(t, err, domain.ErrInvalidBands)
			require.Nil(t, book)
		})
	}

	t.Run("missing fallback country", func(t *testing.T) {
		book, err := domain.NewRateBook(domain.CountryMENA, build([]domain.VolumeBand{{Lower: 0, Upper: inf, Price: 1}}))
		require.ErrorIs(t, err, domain.ErrMissingCountry)
		require.Nil(t, book)
	})

	t.Run("valid single band", func(t *testing.T) {
		book, err := domain.NewRateBook(domain.CountryIndia, build([]domain.VolumeBand{{Lower: 0, Upper: inf, Price: 1}}))
		require.NoError(t, err)
		require.InDelta(t, 1.0, book.SuggestedPrice(domain.CountryIndia, domain.MessageAI, 1e12), 1e-9)
	})
}
