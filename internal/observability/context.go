package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

// Context keys for the log fields carried by a request.
const (
	TraceIDKey   contextKey = "trace_id"
	SpanIDKey    contextKey = "span_id"
	RequestIDKey contextKey = "request_id"
	CountryKey   contextKey = "country"
	StageKey     contextKey = "stage"
)

// Stage names the quotation step a log line belongs to.
type Stage string

const (
	StageFees     Stage = "fees"
	StageRates    Stage = "rates"
	StageQuote    Stage = "quote"
	StageValidate Stage = "validate"
	StageBundle   Stage = "bundle"
)

const (
	traceIDBytes = 16 // W3C trace-context sizes
	spanIDBytes  = 8
)

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithCountry tags the context with the market being quoted.
func WithCountry(ctx context.Context, country string) context.Context {
	return context.WithValue(ctx, CountryKey, country)
}

// WithStage tags the context with the quotation step.
func WithStage(ctx context.Context, stage Stage) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}

func stringValue(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string { return stringValue(ctx, TraceIDKey) }

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string { return stringValue(ctx, SpanIDKey) }

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }

// GetCountry extracts the quoted market from context.
func GetCountry(ctx context.Context) string { return stringValue(ctx, CountryKey) }

// GetStage returns the quotation step, or "" outside of one.
func GetStage(ctx context.Context) Stage {
	stage, _ := ctx.Value(StageKey).(Stage)
	return stage
}

func randomHex(n int) (string, bool) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", false
	}
	return hex.EncodeToString(b), true
}

// GenerateTraceID returns 32 hex chars, falling back to a UUID.
func GenerateTraceID() string {
	if id, ok := randomHex(traceIDBytes); ok {
		return id
	}
	return uuid.New().String()
}

// GenerateSpanID returns 16 hex chars.
func GenerateSpanID() string {
	if id, ok := randomHex(spanIDBytes); ok {
		return id
	}
	return uuid.New().String()[:16]
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
