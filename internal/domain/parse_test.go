package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/quoter/internal/domain"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"5000", 5000},
		{" 10,000 ", 10000},
		{"2.5", 2.5},
		{"", 0},
		{"abc", 0},
		{"-10", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.InDelta(t, tt.expected, domain.ParseVolume(tt.input), 1e-9)
		})
	}

	t.Run("negative zero becomes zero", func(t *testing.T) {
		require.False(t, math.Signbit(domain.ParseVolume("-0")))
	})
}

func TestVolumes_Sanitize(t *testing.T) {
	v := domain.Volumes{AI: 10, Advanced: -3, BasicMarketing: math.NaN(), BasicUtility: math.Copysign(0, -1)}

	clean := v.Sanitize()

	require.Equal(t, domain.Volumes{AI: 10}, clean)
	require.False(t, math.Signbit(clean.BasicUtility))
	require.True(t, domain.Volumes{AI: -1}.Sanitize().AllZero())
}

func TestParsePrice(t *testing.T) {
	t.Run("should parse valid prices", func(t *testing.T) {
		price := domain.ParsePrice("0.95")
		require.NotNil(t, price)
		require.InDelta(t, 0.95, *price, 1e-9)
	})

	t.Run("should keep zero as a chosen price", func(t *testing.T) {
		price := domain.ParsePrice("0")
		require.NotNil(t, price)
		require.Zero(t, *price)
	})

	t.Run("should return nil for missing or malformed input", func(t *testing.T) {
		require.Nil(t, domain.ParsePrice(""))
		require.Nil(t, domain.ParsePrice("   "))
		require.Nil(t, domain.ParsePrice("1.2.3"))
	})

	t.Run("should parse amounts with thousands separators", func(t *testing.T) {
		amount := domain.ParseAmount("1,000,000")
		require.NotNil(t, amount)
		require.InDelta(t, 1000000, *amount, 1e-9)
	})
}

func TestParseCountry(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Country
	}{
		{"India", domain.CountryIndia},
		{"india", domain.CountryIndia},
		{" mena ", domain.CountryMENA},
		{"rest of world", domain.CountryRestOfWorld},
		{"ROW", domain.CountryRestOfWorld},
		{"Atlantis", domain.Country("Atlantis")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.ParseCountry(tt.input))
		})
	}
}
