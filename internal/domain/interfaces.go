package domain

import "context"

// RateLookup resolves rate-card data for a country.
type RateLookup interface {
	// SuggestedPrice returns the markup price of the band containing volume.
	SuggestedPrice(country Country, messageType MessageType, volume float64) float64

	// OveragePrice returns the price of the band above the one containing volume.
	OveragePrice(country Country, messageType MessageType, volume float64) float64

	// DisplayPrice returns the price shown before a volume is entered.
	DisplayPrice(country Country, messageType MessageType, volume float64) float64

	// MetaCosts returns the pass-through costs for a country.
	MetaCosts(country Country) MetaCosts

	// CurrencySymbol returns the display currency symbol for a country.
	CurrencySymbol(country Country) string
}

// PlatformFeeCalculator computes the platform fee from feature selections.
type PlatformFeeCalculator interface {
	// ComputeFee returns the fee and its currency code.
	ComputeFee(country Country, selection PlatformFeeSelection) FeeQuote
}

// PricingCalculator produces a quote from volumes and prices.
type PricingCalculator interface {
	// Calculate returns line items, totals and margins.
	Calculate(country Country, volumes Volumes, platformFee float64, chosen Prices) *QuoteResult
}

// PriceValidator checks user prices against the discount floor.
type PriceValidator interface {
	// Validate returns advisory violations; an empty slice means the prices pass.
	Validate(chosen Prices, suggested RateSheet, chosenPlatformFee, rateCardPlatformFee float64) []Violation
}

// BundleCalculator produces committed-amount quotes.
type BundleCalculator interface {
	// CalculateBundle returns the bundle breakdown.
	CalculateBundle(
		country Country,
		volumes Volumes,
		chosen Prices,
		platformFee float64,
		committedAmount *float64,
	) *BundleQuote
}

// QuoteRecorder receives calculation outcomes for analytics.
type QuoteRecorder interface {
	RecordFee(ctx context.Context, country Country, quote FeeQuote)
	RecordQuote(ctx context.Context, result *QuoteResult)
	RecordValidation(ctx context.Context, country Country, violations []Violation)
	RecordBundle(ctx context.Context, quote *BundleQuote)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// NopRecorder discards every record.
type NopRecorder struct{}

func (NopRecorder) RecordFee(context.Context, Country, FeeQuote) {}
func (NopRecorder) RecordQuote(context.Context, *QuoteResult) {}
func (NopRecorder) RecordValidation(context.Context, Country, []Violation) {}
func (NopRecorder) RecordBundle(context.Context, *BundleQuote) {}
