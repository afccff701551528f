package domain

// DefaultOverageMultiplier prices bundle overage relative to the agreed price.
const DefaultOverageMultiplier = 1.2

const (
	platformFeeChosenLabel = "Platform Fee (Chosen)"
	platformFeeLabel       = "Platform Fee"
	committedAmountLabel   = "Committed Amount"
)

// StandardBundleCalculator builds committed-amount and volume bundle quotes.
type StandardBundleCalculator struct {
	rates      RateLookup
	calculator PricingCalculator
	multiplier float64
}

// NewStandardBundleCalculator creates a bundle calculator.
// A non-positive multiplier uses DefaultOverageMultiplier.
func NewStandardBundleCalculator(
	rates RateLookup,
	calculator PricingCalculator,
	multiplier float64,
) *StandardBundleCalculator {
	if multiplier <= 0 {
		multiplier = DefaultOverageMultiplier
	}
	return &StandardBundleCalculator{
		rates:      rates,
		calculator: calculator,
		multiplier: multiplier,
	}
}

// CalculateBundle uses committed mode when every volume is zero and volume mode otherwise.
// Negative volumes count as 0.
func (b *StandardBundleCalculator) CalculateBundle(
	country Country,
	volumes Volumes,
	chosen Prices,
	platformFee float64,
	committedAmount *float64,
) *BundleQuote {
	volumes = volumes.Sanitize()
	if volumes.AllZero() {
		return b.committed(country, chosen, platformFee, committedAmount)
	}
	return b.volume(country, volumes, chosen, platformFee, committedAmount)
}

func (b *StandardBundleCalculator) committed(
	country Country,
	chosen Prices,
	platformFee float64,
	committedAmount *float64,
) *BundleQuote {
	committed := 0.0
	if committedAmount != nil {
		committed = *committedAmount
	}

	items := make([]LineItem, 0, len(MessageTypes)+2)
	for _, messageType := range MessageTypes {
		agreed, _ := chosen.Of(messageType)
		items = append(items, LineItem{
			Kind:        LineItemBundleMessage,
			Label:       messageType.Label(),
			MessageType: messageType,
			Bundle: &BundleLine{
				Volume:       0,
				AgreedPrice:  agreed,
				OveragePrice: round4(b.multiplier * agreed),
			},
			Revenue: 0,
		})
	}
	items = append(items,
		LineItem{Kind: LineItemPlatformFee, Label: platformFeeChosenLabel, Revenue: platformFee},
		LineItem{Kind: LineItemCommittedAmount, Label: committedAmountLabel, Revenue: committed},
	)

	return &BundleQuote{
		Mode:            BundleModeCommitted,
		Country:         country,
		Currency:        b.rates.CurrencySymbol(country),
		LineItems:       items,
		PlatformFee:     platformFee,
		CommittedAmount: committed,
		GrandTotal:      committed + platformFee,
	}
}

func (b *StandardBundleCalculator) volume(
	country Country,
	volumes Volumes,
	chosen Prices,
	platformFee float64,
	committedAmount *float64,
) *BundleQuote {
	items := make([]LineItem, 0, len(MessageTypes)+1)
	var bundleCost float64
	for _, messageType := range MessageTypes {
		volume := volumes.Of(messageType)
		suggested := b.rates.SuggestedPrice(country, messageType, volume)
		price := suggested
		if p, ok := chosen.Of(messageType); ok {
			price = p
		}

		cost := volume * price
		bundleCost += cost
		items = append(items, LineItem{
			Kind:        LineItemBundleMessage,
			Label:       messageType.Label(),
			MessageType: messageType,
			Bundle: &BundleLine{
				Volume:         volume,
				AgreedPrice:    price,
				SuggestedPrice: Price(suggested),
				OveragePrice:   b.multiplier * price,
			},
			Revenue: cost,
		})
	}
	items = append(items, LineItem{Kind: LineItemPlatformFee, Label: platformFeeLabel, Revenue: platformFee})

	committed := 0.0
	if committedAmount != nil {
		committed = *committedAmount
	}

	total := platformFee + bundleCost
	return &BundleQuote{
		Mode:             BundleModeVolume,
		Country:          country,
		Currency:         b.rates.CurrencySymbol(country),
		LineItems:        items,
		PlatformFee:      platformFee,
		CommittedAmount:  committed,
		BundleCost:       bundleCost,
		TotalBundlePrice: total,
		GrandTotal:       total,
		Quote:            b.calculator.Calculate(country, volumes, platformFee, chosen),
	}
}
