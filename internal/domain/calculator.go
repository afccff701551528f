package domain

const percent = 100.0

// StandardPricingCalculator computes per-message quotes against the rate card.
type StandardPricingCalculator struct {
	rates RateLookup
}

// NewStandardPricingCalculator creates a new pricing calculator (DI constructor).
func NewStandardPricingCalculator(rates RateLookup) *StandardPricingCalculator {
	return &StandardPricingCalculator{
		rates: rates,
	}
}

// Calculate builds the four message line items and the aggregate totals.
// Revenue includes the platform fee. The platform fee line item is not added here.
// Negative volumes count as 0.
func (c *StandardPricingCalculator) Calculate(
	country Country,
	volumes Volumes,
	platformFee float64,
	chosen Prices,
) *QuoteResult {
	volumes = volumes.Sanitize()
	meta := c.rates.MetaCosts(country)

	result := &QuoteResult{
		Country:     country,
		Currency:    c.rates.CurrencySymbol(country),
		LineItems:   make([]LineItem, 0, len(MessageTypes)+1),
		PlatformFee: platformFee,
	}

	var revenue, suggestedRevenue float64
	for _, messageType := range MessageTypes {
		volume := volumes.Of(messageType)
		suggested := c.rates.SuggestedPrice(country, messageType, volume)

		used := suggested
		if price, ok := chosen.Of(messageType); ok {
			used = price
		}

		metaCost := meta.For(messageType)
		line := &MessageLine{
			Volume:           volume,
			ChosenPrice:      used,
			SuggestedPrice:   suggested,
			OveragePrice:     c.rates.OveragePrice(country, messageType, volume),
			MetaCost:         metaCost,
			FinalPrice:       metaCost + used,
			SuggestedRevenue: (metaCost + suggested) * volume,
		}
		lineRevenue := line.FinalPrice * volume

		result.LineItems = append(result.LineItems, LineItem{
			Kind:        LineItemMessage,
			Label:       messageType.Label(),
			MessageType: messageType,
			Message:     line,
			Revenue:     lineRevenue,
		})

		revenue += lineRevenue
		suggestedRevenue += line.SuggestedRevenue
	}

	result.Revenue = revenue + platformFee
	result.SuggestedRevenue = suggestedRevenue + platformFee

	advancedMarketing, advancedUtility := advancedChannelSplit(volumes)
	result.ChannelCost = meta.Marketing*volumes.BasicMarketing +
		meta.Utility*volumes.BasicUtility +
		meta.Marketing*advancedMarketing +
		meta.Utility*advancedUtility
	result.AICost = meta.AI * volumes.AI
	result.TotalCost = result.ChannelCost + result.AICost

	result.MarginPercent = MarginPercent(result.Revenue, platformFee, result.TotalCost)
	result.SuggestedMarginPercent = MarginPercent(result.SuggestedRevenue, platformFee, result.TotalCost)

	return result
}

// advancedChannelSplit returns the share of advanced volume billed as marketing
// and utility channel traffic. Advanced volume is not split yet, so both are zero.
func advancedChannelSplit(_ Volumes) (marketing, utility float64) {
	return 0, 0
}

// MarginPercent returns (revenue + fee - cost) / (revenue + fee) * 100,
// or 0 when the denominator is not positive.
func MarginPercent(revenue, platformFee, totalCost float64) float64 {
	denominator := revenue + platformFee
	if denominator <= 0 {
		return 0
	}
	return (denominator - totalCost) / denominator * percent
}
