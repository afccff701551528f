package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/quoter/internal/domain"
)

func TestStandardPricingCalculator_Calculate(t *testing.T) {
	book := newTestBook(t)
	calculator := domain.NewStandardPricingCalculator(book)

	t.Run("should price AI volume at the rate card", func(t *testing.T) {
		result := calculator.Calculate(domain.CountryIndia, domain.Volumes{AI: 5000}, 775000, domain.Prices{})

		require.Equal(t, domain.CountryIndia, result.Country)
		require.Equal(t, "₹", result.Currency)
		require.Len(t, result.LineItems, len(domain.MessageTypes))

		ai := result.LineItems[0]
		require.Equal(t, domain.LineItemMessage, ai.Kind)
		require.Equal(t, domain.MessageAI, ai.MessageType)
		require.Equal(t, "AI Message", ai.Label)
		require.InDelta(t, 1.00, ai.Message.ChosenPrice, 1e-9)
		require.InDelta(t, 1.00, ai.Message.SuggestedPrice, 1e-9)
		require.InDelta(t, 0.90, ai.Message.OveragePrice, 1e-9)
		require.InDelta(t, 1.115, ai.Message.FinalPrice, 1e-9)
		require.InDelta(t, 5575, ai.Revenue, 1e-6)

		require.InDelta(t, 5575+775000, result.Revenue, 1e-6)
		require.InDelta(t, 5575+775000, result.SuggestedRevenue, 1e-6)
		require.InDelta(t, 575, result.AICost, 1e-6)
		require.InDelta(t, 0, result.ChannelCost, 1e-9)
		require.InDelta(t, 575, result.TotalCost, 1e-6)

		denominator := result.Revenue + 775000
		require.InDelta(t, (denominator-575)/denominator*100, result.MarginPercent, 1e-9)
	})

	t.Run("should prefer chosen prices over the rate card", func(t *testing.T) {
		result := calculator.Calculate(domain.CountryIndia, domain.Volumes{AI: 5000}, 0,
			domain.Prices{AI: domain.Price(0.95)})

		ai := result.LineItems[0].Message
		require.InDelta(t, 0.95, ai.ChosenPrice, 1e-9)
		require.InDelta(t, 1.00, ai.SuggestedPrice, 1e-9)
		require.InDelta(t, 1.065*5000, result.Revenue, 1e-6)
		require.InDelta(t, 1.115*5000, result.SuggestedRevenue, 1e-6)
		require.Less(t, result.MarginPercent, result.SuggestedMarginPercent)
	})

	t.Run("should cost advanced messages with the AI meta cost", func(t *testing.T) {
		result := calculator.Calculate(domain.CountryIndia, domain.Volumes{Advanced: 1000}, 0, domain.Prices{})

		advanced := result.LineItems[1]
		require.Equal(t, domain.MessageAdvanced, advanced.MessageType)
		require.InDelta(t, 0.1150, advanced.Message.MetaCost, 1e-9)
		require.InDelta(t, (0.1150+0.50)*1000, advanced.Revenue, 1e-6)
		// Advanced volume carries no channel or AI cost.
		require.InDelta(t, 0, result.TotalCost, 1e-9)
	})

	t.Run("should charge channel cost for basic messages", func(t *testing.T) {
		result := calculator.Calculate(domain.CountryIndia,
			domain.Volumes{BasicMarketing: 1000, BasicUtility: 2000}, 0, domain.Prices{})

		require.InDelta(t, 0.7846*1000+0.1150*2000, result.ChannelCost, 1e-6)
		require.InDelta(t, 0, result.AICost, 1e-9)
		require.InDelta(t, result.ChannelCost, result.TotalCost, 1e-9)
	})

	t.Run("should treat negative and non-finite volumes as zero", func(t *testing.T) {
		volumes := domain.Volumes{AI: -5000, Advanced: math.NaN(), BasicMarketing: math.Inf(1), BasicUtility: -1}

		result := calculator.Calculate(domain.CountryIndia, volumes, 1000, domain.Prices{})

		require.InDelta(t, 1000, result.Revenue, 1e-9)
		require.Zero(t, result.TotalCost)
		require.InDelta(t, 100, result.MarginPercent, 1e-9)
		for _, item := range result.LineItems {
			require.Zero(t, item.Message.Volume)
		}
	})

	t.Run("should return zero margin with zero revenue", func(t *testing.T) {
		result := calculator.Calculate(domain.CountryIndia, domain.Volumes{}, 0, domain.Prices{})

		require.Zero(t, result.Revenue)
		require.Zero(t, result.MarginPercent)
		require.Zero(t, result.SuggestedMarginPercent)
	})

	t.Run("should keep margin at or below 100 for non-negative cost", func(t *testing.T) {
		volumes := []domain.Volumes{
			{AI: 1},
			{AI: 20000, Advanced: 70000, BasicMarketing: 300000, BasicUtility: 900000},
			{BasicMarketing: 10000},
		}
		for _, country := range domain.KnownCountries {
			for _, v := range volumes {
				result := calculator.Calculate(country, v, 1000, domain.Prices{})
				require.LessOrEqual(t, result.MarginPercent, 100.0)
			}
		}
	})

	t.Run("should fall back to India meta costs for unknown countries", func(t *testing.T) {
		result := calculator.Calculate("Atlantis", domain.Volumes{AI: 100}, 0, domain.Prices{})

		require.Equal(t, "$", result.Currency)
		require.InDelta(t, 0.1150*100, result.AICost, 1e-9)
		require.Zero(t, result.LineItems[0].Message.SuggestedPrice)
	})
}

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		fee      float64
		cost     float64
		expected float64
	}{
		{name: "counts the fee in the denominator", revenue: 150, fee: 50, cost: 100, expected: 50},
		{name: "no cost", revenue: 100, fee: 0, cost: 0, expected: 100},
		{name: "loss", revenue: 100, fee: 0, cost: 200, expected: -100},
		{name: "zero denominator", revenue: 0, fee: 0, cost: 10, expected: 0},
		{name: "negative denominator", revenue: -10, fee: 5, cost: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, domain.MarginPercent(tt.revenue, tt.fee, tt.cost), 1e-9)
		})
	}
}
