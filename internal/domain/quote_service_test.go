package domain_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/mocks"
	"github.com/davidbz/quoter/internal/ratecard"
)

// mockRecorder is a mock implementation of QuoteRecorder for testing.
type mockRecorder struct {
	mu          sync.Mutex
	fees        []domain.FeeQuote
	quotes      []*domain.QuoteResult
	validations [][]domain.Violation
	bundles     []*domain.BundleQuote
}

func (m *mockRecorder) RecordFee(_ context.Context, _ domain.Country, quote domain.FeeQuote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fees = append(m.fees, quote)
}

func (m *mockRecorder) RecordQuote(_ context.Context, result *domain.QuoteResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = append(m.quotes, result)
}

func (m *mockRecorder) RecordValidation(_ context.Context, _ domain.Country, violations []domain.Violation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validations = append(m.validations, violations)
}

func (m *mockRecorder) RecordBundle(_ context.Context, quote *domain.BundleQuote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bundles = append(m.bundles, quote)
}

// mockPublisher is a mock implementation of EventPublisher for testing.
type mockPublisher struct {
	mu     sync.Mutex
	events []string
	data   []map[string]interface{}
}

func (m *mockPublisher) Publish(_ context.Context, eventType string, data map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, eventType)
	m.data = append(m.data, data)
}

func newTestService(t *testing.T) (*domain.QuoteService, *mockRecorder, *mockPublisher) {
	t.Helper()
	book := newTestBook(t)
	calculator := domain.NewStandardPricingCalculator(book)
	recorder := &mockRecorder{}
	events := &mockPublisher{}

	svc := domain.NewQuoteService(
		book,
		ratecard.NewFeeEngine(),
		calculator,
		domain.NewDiscountGuard(domain.DefaultDiscountFloor),
		domain.NewStandardBundleCalculator(book, calculator, domain.DefaultOverageMultiplier),
		recorder,
		events,
	)
	return svc, recorder, events
}

func TestQuoteService_PlatformFee(t *testing.T) {
	t.Run("should compute, record and publish the fee", func(t *testing.T) {
		svc, recorder, events := newTestService(t)

		quote, err := svc.PlatformFee(context.Background(), &domain.FeeRequest{
			Country:   domain.CountryIndia,
			Selection: domain.ParseSelection("Tier 2", "Standard", "50+", "Yes", "No", "NA"),
		})

		require.NoError(t, err)
		require.InDelta(t, 775000, quote.Fee, 1e-9)
		require.Equal(t, "INR", quote.Currency)
		require.Len(t, recorder.fees, 1)
		require.Equal(t, []string{"fee.computed"}, events.events)
		require.Equal(t, "India", events.data[0]["country"])
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.PlatformFee(context.Background(), nil)

		require.Error(t, err)
		require.Contains(t, err.Error(), "request cannot be nil")
	})
}

func TestQuoteService_SuggestRates(t *testing.T) {
	svc, _, _ := newTestService(t)

	rates, err := svc.SuggestRates(context.Background(), &domain.RatesRequest{
		Country: domain.CountryIndia,
		Volumes: domain.Volumes{AI: 20000},
	})

	require.NoError(t, err)
	require.Len(t, rates, len(domain.MessageTypes))

	ai := rates[0]
	require.Equal(t, domain.MessageAI, ai.MessageType)
	require.InDelta(t, 0.90, ai.SuggestedPrice, 1e-9)
	require.InDelta(t, 0.90, ai.DisplayPrice, 1e-9)
	require.InDelta(t, 0.80, ai.OveragePrice, 1e-9)
	require.InDelta(t, 0.1150, ai.MetaCost, 1e-9)

	advanced := rates[1]
	require.Zero(t, advanced.SuggestedPrice)
	require.InDelta(t, 0.50, advanced.DisplayPrice, 1e-9)

	t.Run("should return error when request is nil", func(t *testing.T) {
		rates, err := svc.SuggestRates(context.Background(), nil)
		require.Error(t, err)
		require.Nil(t, rates)
	})
}

func TestQuoteService_Quote(t *testing.T) {
	t.Run("should append the platform fee line item", func(t *testing.T) {
		svc, recorder, events := newTestService(t)

		result, err := svc.Quote(context.Background(), &domain.QuoteRequest{
			Country:     domain.CountryIndia,
			Volumes:     domain.Volumes{AI: 5000},
			PlatformFee: 775000,
			Prices:      domain.Prices{AI: domain.Price(0.95)},
		})

		require.NoError(t, err)
		require.Len(t, result.LineItems, len(domain.MessageTypes)+1)

		fee := result.LineItems[len(result.LineItems)-1]
		require.Equal(t, domain.LineItemPlatformFee, fee.Kind)
		require.Equal(t, "Platform Fee", fee.Label)
		require.Nil(t, fee.Message)
		require.InDelta(t, 775000, fee.Revenue, 1e-9)

		require.Len(t, recorder.quotes, 1)
		require.Same(t, result, recorder.quotes[0])
		require.Equal(t, []string{"quote.calculated"}, events.events)
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		svc, recorder, _ := newTestService(t)

		result, err := svc.Quote(context.Background(), nil)

		require.Error(t, err)
		require.Nil(t, result)
		require.Empty(t, recorder.quotes)
	})
}

func TestQuoteService_ValidatePrices(t *testing.T) {
	t.Run("should pass prices within the floor", func(t *testing.T) {
		svc, recorder, _ := newTestService(t)

		result, err := svc.ValidatePrices(context.Background(), &domain.ValidationRequest{
			Country:     domain.CountryIndia,
			Volumes:     domain.Volumes{AI: 5000},
			Prices:      domain.Prices{AI: domain.Price(0.95)},
			PlatformFee: 775000,
			Selection:   domain.ParseSelection("Tier 2", "Standard", "50+", "Yes", "No", "NA"),
		})

		require.NoError(t, err)
		require.True(t, result.Passed)
		require.Empty(t, result.Violations)
		require.InDelta(t, 775000, result.RateCardPlatformFee, 1e-9)
		require.InDelta(t, 1.00, result.SuggestedPrices[domain.MessageAI], 1e-9)
		require.Len(t, recorder.validations, 1)
	})

	t.Run("should flag discounted prices and fee without failing", func(t *testing.T) {
		svc, _, events := newTestService(t)

		result, err := svc.ValidatePrices(context.Background(), &domain.ValidationRequest{
			Country:     domain.CountryIndia,
			Volumes:     domain.Volumes{AI: 5000},
			Prices:      domain.Prices{AI: domain.Price(0.40)},
			PlatformFee: 100000,
			Selection:   domain.ParseSelection("Tier 2", "Standard", "50+", "Yes", "No", "NA"),
		})

		require.NoError(t, err)
		require.False(t, result.Passed)
		require.Len(t, result.Violations, 3)
		require.Equal(t, domain.ViolationPriceBelowFloor, result.Violations[0].Kind)
		require.Equal(t, domain.ViolationPlatformFeeBelowFloor, result.Violations[1].Kind)
		require.Equal(t, domain.ViolationHighRejectionRisk, result.Violations[2].Kind)
		require.Equal(t, 3, events.data[0]["violations"])
	})
}

func TestQuoteService_Bundle(t *testing.T) {
	svc, recorder, events := newTestService(t)

	quote, err := svc.Bundle(context.Background(), &domain.BundleRequest{
		Country:         domain.CountryIndia,
		PlatformFee:     1000,
		CommittedAmount: domain.Price(5000),
	})

	require.NoError(t, err)
	require.Equal(t, domain.BundleModeCommitted, quote.Mode)
	require.InDelta(t, 6000, quote.GrandTotal, 1e-9)
	require.Len(t, recorder.bundles, 1)
	require.Equal(t, []string{"bundle.calculated"}, events.events)

	t.Run("should return error when request is nil", func(t *testing.T) {
		quote, err := svc.Bundle(context.Background(), nil)
		require.Error(t, err)
		require.Nil(t, quote)
	})
}

func TestNewQuoteService_NilCollaborators(t *testing.T) {
	book := newTestBook(t)
	calculator := domain.NewStandardPricingCalculator(book)
	svc := domain.NewQuoteService(
		book,
		ratecard.NewFeeEngine(),
		calculator,
		domain.NewDiscountGuard(0),
		domain.NewStandardBundleCalculator(book, calculator, 0),
		nil,
		nil,
	)

	result, err := svc.Quote(context.Background(), &domain.QuoteRequest{Country: domain.CountryMENA})

	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestQuoteService_RecordsValidationOutcome(t *testing.T) {
	book := newTestBook(t)
	calculator := domain.NewStandardPricingCalculator(book)
	recorder := mocks.NewMockQuoteRecorder(t)
	events := mocks.NewMockEventPublisher(t)

	svc := domain.NewQuoteService(
		book,
		ratecard.NewFeeEngine(),
		calculator,
		domain.NewDiscountGuard(domain.DefaultDiscountFloor),
		domain.NewStandardBundleCalculator(book, calculator, domain.DefaultOverageMultiplier),
		recorder,
		events,
	)

	var recorded []domain.Violation
	recorder.EXPECT().
		RecordValidation(mock.Anything, domain.CountryEurope, mock.Anything).
		Run(func(_ context.Context, _ domain.Country, violations []domain.Violation) {
			recorded = violations
		}).
		Return().
		Once()
	events.EXPECT().
		Publish(mock.Anything, "prices.validated", mock.MatchedBy(func(data map[string]interface{}) bool {
			return data["country"] == "Europe" && data["violations"] == 2
		})).
		Return().
		Once()

	result, err := svc.ValidatePrices(context.Background(), &domain.ValidationRequest{
		Country:     domain.CountryEurope,
		PlatformFee: 100,
		Selection:   domain.ParseSelection("NA", "NA", "NA", "No", "No", "NA"),
	})

	require.NoError(t, err)
	require.False(t, result.Passed)
	require.Equal(t, result.Violations, recorded)
	require.Equal(t, domain.ViolationPlatformFeeBelowFloor, recorded[0].Kind)
}

func TestQuoteService_NegativeVolumes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	volumes := domain.Volumes{AI: -5000}

	t.Run("rates", func(t *testing.T) {
		rates, err := svc.SuggestRates(ctx, &domain.RatesRequest{Country: domain.CountryIndia, Volumes: volumes})

		require.NoError(t, err)
		require.Zero(t, rates[0].Volume)
		require.Zero(t, rates[0].SuggestedPrice)
		require.InDelta(t, 1.00, rates[0].DisplayPrice, 1e-9)
	})

	t.Run("quote", func(t *testing.T) {
		result, err := svc.Quote(ctx, &domain.QuoteRequest{Country: domain.CountryIndia, Volumes: volumes, PlatformFee: 10})

		require.NoError(t, err)
		require.InDelta(t, 10, result.Revenue, 1e-9)
		require.Zero(t, result.TotalCost)
		require.LessOrEqual(t, result.MarginPercent, 100.0)
	})

	t.Run("validate", func(t *testing.T) {
		result, err := svc.ValidatePrices(ctx, &domain.ValidationRequest{
			Country:     domain.CountryIndia,
			Volumes:     volumes,
			Prices:      domain.Prices{AI: domain.Price(0.01)},
			PlatformFee: 775000,
			Selection:   domain.ParseSelection("Tier 2", "Standard", "50+", "Yes", "No", "NA"),
		})

		require.NoError(t, err)
		require.True(t, result.Passed)
		require.Zero(t, result.SuggestedPrices[domain.MessageAI])
	})

	t.Run("bundle", func(t *testing.T) {
		quote, err := svc.Bundle(ctx, &domain.BundleRequest{
			Country:         domain.CountryIndia,
			Volumes:         volumes,
			PlatformFee:     1000,
			CommittedAmount: domain.Price(5000),
		})

		require.NoError(t, err)
		require.Equal(t, domain.BundleModeCommitted, quote.Mode)
		require.InDelta(t, 6000, quote.GrandTotal, 1e-9)
	})
}
