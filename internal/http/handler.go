package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davidbz/quoter/internal/analytics"
	"github.com/davidbz/quoter/internal/domain"
	"github.com/davidbz/quoter/internal/observability"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	quotes   *domain.QuoteService
	rates    *domain.RateBook
	recorder *analytics.Recorder
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService, rates *domain.RateBook, recorder *analytics.Recorder) *Handler {
	return &Handler{
		quotes:   quotes,
		rates:    rates,
		recorder: recorder,
	}
}

// HandlePlatformFee computes the platform fee for a feature selection.
func (h *Handler) HandlePlatformFee(w http.ResponseWriter, r *http.Request) {
	var req domain.FeeRequest
	if !decodePost(w, r, &req) {
		return
	}
	req.Country = domain.ParseCountry(string(req.Country))

	quote, err := h.quotes.PlatformFee(r.Context(), &req)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, quote)
}

// HandleRates returns rate-card suggestions for the given volumes.
func (h *Handler) HandleRates(w http.ResponseWriter, r *http.Request) {
	var req domain.RatesRequest
	if !decodePost(w, r, &req) {
		return
	}
	req.Country = domain.ParseCountry(string(req.Country))

	rates, err := h.quotes.SuggestRates(r.Context(), &req)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, map[string]interface{}{
		"country":  req.Country,
		"currency": h.rates.CurrencySymbol(req.Country),
		"rates":    rates,
	})
}

// HandleQuote returns a volume quote.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if !decodePost(w, r, &req) {
		return
	}
	req.Country = domain.ParseCountry(string(req.Country))

	result, err := h.quotes.Quote(r.Context(), &req)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, result)
}

// HandleValidate checks chosen prices against the discount floor.
// Violations are returned with 200; they are advisory.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidationRequest
	if !decodePost(w, r, &req) {
		return
	}
	req.Country = domain.ParseCountry(string(req.Country))

	result, err := h.quotes.ValidatePrices(r.Context(), &req)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, result)
}

// HandleBundle returns a committed-amount or volume bundle quote.
func (h *Handler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	var req domain.BundleRequest
	if !decodePost(w, r, &req) {
		return
	}
	req.Country = domain.ParseCountry(string(req.Country))

	quote, err := h.quotes.Bundle(r.Context(), &req)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, quote)
}

type bandView struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper"`
	Price float64  `json:"price"`
}

type countryView struct {
	Country  domain.Country                    `json:"country"`
	Currency string                            `json:"currency"`
	Meta     domain.MetaCosts                  `json:"meta_costs"`
	Tiers    map[domain.MessageType][]bandView `json:"tiers"`
}

// HandleRateCard lists the tier tables of every market.
// Unbounded top bands are rendered with a null upper limit.
func (h *Handler) HandleRateCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	countries := h.rates.Countries()
	views := make([]countryView, 0, len(countries))
	for _, country := range countries {
		view := countryView{
			Country:  country,
			Currency: h.rates.CurrencySymbol(country),
			Meta:     h.rates.MetaCosts(country),
			Tiers:    make(map[domain.MessageType][]bandView, len(domain.MessageTypes)),
		}
		for _, messageType := range domain.MessageTypes {
			for _, band := range h.rates.Bands(country, messageType) {
				bv := bandView{Lower: band.Lower, Price: band.Price}
				if !band.Unbounded() {
					upper := band.Upper
					bv.Upper = &upper
				}
				view.Tiers[messageType] = append(view.Tiers[messageType], bv)
			}
		}
		views = append(views, view)
	}

	writeJSON(r.Context(), w, http.StatusOK, views)
}

// HandleAnalytics returns the aggregated calculation summary.
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, h.recorder.Summary())
}

// HandleMetrics serves Prometheus metrics.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.recorder.Handler().ServeHTTP(w, r)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func decodePost(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		observability.FromContext(r.Context()).Warn("invalid request body",
			observability.String("path", r.URL.Path),
			observability.Error(err))
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	observability.FromContext(ctx).Error("request failed", observability.Error(err))
	http.Error(w, err.Error(), status)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
