package domain

import (
	"context"
	"errors"

	"github.com/davidbz/quoter/internal/observability"
)

var errNilRequest = errors.New("request cannot be nil")

// FeeRequest asks for the platform fee of a feature selection.
type FeeRequest struct {
	Country   Country              `json:"country"`
	Selection PlatformFeeSelection `json:"selection"`
}

// RatesRequest asks for rate-card suggestions for a set of volumes.
type RatesRequest struct {
	Country Country `json:"country"`
	Volumes Volumes `json:"volumes"`
}

// QuoteRequest asks for a volume-based quote.
type QuoteRequest struct {
	Country     Country `json:"country"`
	Volumes     Volumes `json:"volumes"`
	PlatformFee float64 `json:"platform_fee"`
	Prices      Prices  `json:"prices"`
}

// ValidationRequest asks whether user prices respect the discount floor.
// Selection is used to recompute the rate-card platform fee.
type ValidationRequest struct {
	Country     Country              `json:"country"`
	Volumes     Volumes              `json:"volumes"`
	Prices      Prices               `json:"prices"`
	PlatformFee float64              `json:"platform_fee"`
	Selection   PlatformFeeSelection `json:"selection"`
}

// ValidationResult carries the guard's findings and the references used.
type ValidationResult struct {
	Passed              bool        `json:"passed"`
	Violations          []Violation `json:"violations"`
	SuggestedPrices     RateSheet   `json:"suggested_prices"`
	RateCardPlatformFee float64     `json:"rate_card_platform_fee"`
}

// BundleRequest asks for a committed-amount or volume bundle quote.
type BundleRequest struct {
	Country         Country  `json:"country"`
	Volumes         Volumes  `json:"volumes"`
	Prices          Prices   `json:"prices"`
	PlatformFee     float64  `json:"platform_fee"`
	CommittedAmount *float64 `json:"committed_amount,omitempty"`
}

// QuoteService exposes one stateless entry point per quotation stage.
type QuoteService struct {
	rates      RateLookup
	fees       PlatformFeeCalculator
	calculator PricingCalculator
	validator  PriceValidator
	bundles    BundleCalculator
	recorder   QuoteRecorder
	events     EventPublisher
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(
	rates RateLookup,
	fees PlatformFeeCalculator,
	calculator PricingCalculator,
	validator PriceValidator,
	bundles BundleCalculator,
	recorder QuoteRecorder,
	events EventPublisher,
) *QuoteService {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &QuoteService{
		rates:      rates,
		fees:       fees,
		calculator: calculator,
		validator:  validator,
		bundles:    bundles,
		recorder:   recorder,
		events:     events,
	}
}

// PlatformFee computes the rate-card platform fee.
func (s *QuoteService) PlatformFee(ctx context.Context, req *FeeRequest) (FeeQuote, error) {
	if req == nil {
		return FeeQuote{}, errNilRequest
	}

	ctx = s.stageContext(ctx, observability.StageFees, req.Country)
	quote := s.fees.ComputeFee(req.Country, req.Selection)

	observability.FromContext(ctx).Info("platform fee computed",
		observability.Float64("fee", quote.Fee),
		observability.String("currency", quote.Currency),
		observability.Int("components", len(quote.Components)))

	s.recorder.RecordFee(ctx, req.Country, quote)
	s.publish(ctx, "fee.computed", map[string]interface{}{
		"country":  string(req.Country),
		"fee":      quote.Fee,
		"currency": quote.Currency,
	})

	return quote, nil
}

// SuggestRates returns the rate-card suggestion for each message type.
func (s *QuoteService) SuggestRates(ctx context.Context, req *RatesRequest) ([]RateQuote, error) {
	if req == nil {
		return nil, errNilRequest
	}

	ctx = s.stageContext(ctx, observability.StageRates, req.Country)
	meta := s.rates.MetaCosts(req.Country)
	volumes := req.Volumes.Sanitize()

	rates := make([]RateQuote, 0, len(MessageTypes))
	for _, messageType := range MessageTypes {
		volume := volumes.Of(messageType)
		rates = append(rates, RateQuote{
			MessageType:    messageType,
			Volume:         volume,
			SuggestedPrice: s.rates.SuggestedPrice(req.Country, messageType, volume),
			DisplayPrice:   s.rates.DisplayPrice(req.Country, messageType, volume),
			OveragePrice:   s.rates.OveragePrice(req.Country, messageType, volume),
			MetaCost:       meta.For(messageType),
		})
	}

	observability.FromContext(ctx).Debug("rates suggested",
		observability.Int("message_types", len(rates)))

	return rates, nil
}

// Quote runs the pricing calculator and appends the platform fee line item.
func (s *QuoteService) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResult, error) {
	if req == nil {
		return nil, errNilRequest
	}

	ctx = s.stageContext(ctx, observability.StageQuote, req.Country)
	result := s.calculator.Calculate(req.Country, req.Volumes.Sanitize(), req.PlatformFee, req.Prices)
	result.LineItems = append(result.LineItems, LineItem{
		Kind:    LineItemPlatformFee,
		Label:   platformFeeLabel,
		Revenue: req.PlatformFee,
	})

	observability.FromContext(ctx).Info("quote calculated",
		observability.Float64("revenue", result.Revenue),
		observability.Float64("total_cost", result.TotalCost),
		observability.Float64("margin_percent", result.MarginPercent),
		observability.Float64("suggested_margin_percent", result.SuggestedMarginPercent))

	s.recorder.RecordQuote(ctx, result)
	s.publish(ctx, "quote.calculated", map[string]interface{}{
		"country":        string(result.Country),
		"revenue":        result.Revenue,
		"margin_percent": result.MarginPercent,
	})

	return result, nil
}

// ValidatePrices checks chosen prices and fee against the rate card.
// Violations are advisory and never turn into errors.
func (s *QuoteService) ValidatePrices(ctx context.Context, req *ValidationRequest) (*ValidationResult, error) {
	if req == nil {
		return nil, errNilRequest
	}

	ctx = s.stageContext(ctx, observability.StageValidate, req.Country)

	volumes := req.Volumes.Sanitize()
	suggested := make(RateSheet, len(MessageTypes))
	for _, messageType := range MessageTypes {
		suggested[messageType] = s.rates.SuggestedPrice(req.Country, messageType, volumes.Of(messageType))
	}
	rateCardFee := s.fees.ComputeFee(req.Country, req.Selection).Fee

	violations := s.validator.Validate(req.Prices, suggested, req.PlatformFee, rateCardFee)

	logger := observability.FromContext(ctx)
	if HasViolations(violations) {
		logger.Warn("prices below discount floor",
			observability.Int("violations", len(violations)),
			observability.Float64("platform_fee", req.PlatformFee),
			observability.Float64("rate_card_platform_fee", rateCardFee))
	} else {
		logger.Info("prices validated")
	}

	s.recorder.RecordValidation(ctx, req.Country, violations)
	s.publish(ctx, "prices.validated", map[string]interface{}{
		"country":    string(req.Country),
		"violations": len(violations),
	})

	return &ValidationResult{
		Passed:              !HasViolations(violations),
		Violations:          violations,
		SuggestedPrices:     suggested,
		RateCardPlatformFee: rateCardFee,
	}, nil
}

// Bundle produces the committed-amount or volume bundle quote.
func (s *QuoteService) Bundle(ctx context.Context, req *BundleRequest) (*BundleQuote, error) {
	if req == nil {
		return nil, errNilRequest
	}

	ctx = s.stageContext(ctx, observability.StageBundle, req.Country)
	quote := s.bundles.CalculateBundle(
		req.Country,
		req.Volumes.Sanitize(),
		req.Prices,
		req.PlatformFee,
		req.CommittedAmount,
	)

	observability.FromContext(ctx).Info("bundle calculated",
		observability.String("mode", string(quote.Mode)),
		observability.Float64("grand_total", quote.GrandTotal),
		observability.Float64("bundle_cost", quote.BundleCost))

	s.recorder.RecordBundle(ctx, quote)
	s.publish(ctx, "bundle.calculated", map[string]interface{}{
		"country":     string(quote.Country),
		"mode":        string(quote.Mode),
		"grand_total": quote.GrandTotal,
	})

	return quote, nil
}

func (s *QuoteService) stageContext(ctx context.Context, stage observability.Stage, country Country) context.Context {
	ctx = observability.WithStage(ctx, stage)
	return observability.WithCountry(ctx, string(country))
}

func (s *QuoteService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, eventType, data)
}
