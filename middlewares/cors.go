package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Preflight defaults. The API is called from the ATS front end with JSON bodies.
var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsHeaders = strings.Join([]string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}, ", ")
	corsMaxAge  = strconv.Itoa(int((12 * time.Hour).Seconds()))
)

type corsConfig struct {
	origins     []string
	credentials bool
}

// CORSOption configures the CORS middleware.
type CORSOption func(*corsConfig)

// WithAllowOrigins restricts CORS to the given origins. "*" allows any origin;
// an empty list keeps the default.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(c *corsConfig) {
		if len(origins) > 0 {
			c.origins = origins
		}
	}
}

// WithAllowCredentials allows cookies and auth headers; the request origin is
// echoed instead of "*".
func WithAllowCredentials() CORSOption {
	return func(c *corsConfig) {
		c.credentials = true
	}
}

// CORS answers preflight requests and adds CORS headers for allowed origins.
// Any origin is allowed by default.
func CORS(opts ...CORSOption) func(http.Handler) http.Handler {
	cfg := &corsConfig{origins: []string{"*"}}
	for _, opt := range opts {
		opt(cfg)
	}
	anyOrigin := slices.Contains(cfg.origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || (!anyOrigin && !slices.Contains(cfg.origins, origin)) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			switch {
			case cfg.credentials:
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			case anyOrigin:
				h.Set("Access-Control-Allow-Origin", "*")
			default:
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
