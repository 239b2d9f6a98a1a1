package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mle-ats/assignmail/pkg/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxUpstreamIDLength bounds ids accepted from callers; longer ones are replaced.
const maxUpstreamIDLength = 128

// upstreamIDHeaders are checked in order; the first non-empty value is reused.
var upstreamIDHeaders = []string{RequestIDHeader, "X-Correlation-ID"}

type requestIDKey struct{}

// RequestIDOption configures the RequestID middleware.
type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	generate func() string
}

// WithRequestIDGenerator replaces the UUID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(c *requestIDConfig) {
		if gen != nil {
			c.generate = gen
		}
	}
}

// RequestID tags every request with an id, reusing a caller-supplied one when
// present. The id is stored in the context and echoed in X-Request-ID.
func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	cfg := &requestIDConfig{generate: uuid.NewString}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := upstreamRequestID(r)
			if id == "" {
				id = cfg.generate()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

func upstreamRequestID(r *http.Request) string {
	for _, h := range upstreamIDHeaders {
		if v := strings.TrimSpace(r.Header.Get(h)); v != "" && len(v) <= maxUpstreamIDLength {
			return v
		}
	}
	return ""
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request id stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records of tagged requests.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := GetRequestID(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
