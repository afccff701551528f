package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/quoter/internal/analytics"
	"github.com/davidbz/quoter/internal/config"
	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/http"
	"github.com/davidbz/quoter/internal/http/middleware"
	"github.com/davidbz/quoter/internal/observability"
	"github.com/davidbz/quoter/internal/ratecard"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-stop:
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(server.Shutdown(ctx), <-errCh)
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Rate card
	if err := container.Provide(ratecard.NewRateBook); err != nil {
		log.Fatalf("Failed to provide rate book: %v", err)
	}
	if err := container.Provide(func(book *domain.RateBook) domain.RateLookup {
		return book
	}); err != nil {
		log.Fatalf("Failed to provide rate lookup: %v", err)
	}
	if err := container.Provide(func() domain.PlatformFeeCalculator {
		return ratecard.NewFeeEngine()
	}); err != nil {
		log.Fatalf("Failed to provide fee engine: %v", err)
	}

	// Analytics
	if err := container.Provide(analytics.NewRecorder); err != nil {
		log.Fatalf("Failed to provide analytics recorder: %v", err)
	}
	if err := container.Provide(func(recorder *analytics.Recorder) domain.QuoteRecorder {
		return recorder
	}); err != nil {
		log.Fatalf("Failed to provide quote recorder: %v", err)
	}

	// Pricing engine
	if err := container.Provide(func(rates domain.RateLookup) domain.PricingCalculator {
		return domain.NewStandardPricingCalculator(rates)
	}); err != nil {
		log.Fatalf("Failed to provide pricing calculator: %v", err)
	}
	if err := container.Provide(func(cfg *config.PricingConfig) domain.PriceValidator {
		return domain.NewDiscountGuard(cfg.DiscountFloor)
	}); err != nil {
		log.Fatalf("Failed to provide discount guard: %v", err)
	}
	if err := container.Provide(func(
		rates domain.RateLookup,
		calculator domain.PricingCalculator,
		cfg *config.PricingConfig,
	) domain.BundleCalculator {
		return domain.NewStandardBundleCalculator(rates, calculator, cfg.OverageMultiplier)
	}); err != nil {
		log.Fatalf("Failed to provide bundle calculator: %v", err)
	}
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
