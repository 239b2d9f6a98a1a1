// Package httpapi exposes the assignment pipeline and the mail relay over HTTP.
//
// Routes:
//
//	POST /send-assignment-email     resolve, compose and send an assignment email
//	POST /preview-assignment-email  compose without sending
//	POST /send-email                relay a caller-composed email
//	GET  /ping                      transport connectivity check
//	GET  /health/live               process liveness
//	GET  /health/ready              dependency readiness
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mle-ats/assignmail/internal/assignment"
	"github.com/mle-ats/assignmail/middlewares"
	"github.com/mle-ats/assignmail/pkg/health"
	"github.com/mle-ats/assignmail/pkg/logger"
	"github.com/mle-ats/assignmail/pkg/mailer"
)

// DefaultMaxBodySize bounds JSON request bodies, base64 attachments included.
const DefaultMaxBodySize = 10 << 20

// Assignments is the pipeline behind the assignment endpoints.
type Assignments interface {
	Send(ctx context.Context, recruiterID, jobID string) (string, error)
	Compose(ctx context.Context, recruiterID, jobID string) (mailer.Email, error)
}

// Relay sends caller-composed emails and checks transport connectivity.
// *mailer.Mailer implements it.
type Relay interface {
	Send(ctx context.Context, email *mailer.Email) (string, error)
	Verify(ctx context.Context) error
}

var (
	_ Assignments = (*assignment.Service)(nil)
	_ Relay       = (*mailer.Mailer)(nil)
)

// Handler serves the API routes.
type Handler struct {
	assignments  Assignments
	relay        Relay
	log          *slog.Logger
	checks       health.Checks
	corsOrigins  []string
	maxBodySize  int64
	checkTimeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request logs and error responses.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithReadinessChecks sets the checks behind /health/ready.
func WithReadinessChecks(checks health.Checks) Option {
	return func(h *Handler) {
		h.checks = checks
	}
}

// WithCORSOrigins restricts CORS to the given origins; "*" allows all.
func WithCORSOrigins(origins ...string) Option {
	return func(h *Handler) {
		if len(origins) > 0 {
			h.corsOrigins = origins
		}
	}
}

// WithMaxBodySize caps JSON request bodies.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// WithCheckTimeout bounds /ping and /health/ready.
func WithCheckTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.checkTimeout = d
		}
	}
}

// New creates the API handler.
func New(assignments Assignments, relay Relay, opts ...Option) *Handler {
	h := &Handler{
		assignments:  assignments,
		relay:        relay,
		log:          logger.NewNope(),
		corsOrigins:  []string{"*"},
		maxBodySize:  DefaultMaxBodySize,
		checkTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the router with the middleware stack applied.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewares.CORS(middlewares.WithAllowOrigins(h.corsOrigins...)),
		middlewares.RequestID(),
		middlewares.Logging(h.log),
		middlewares.Recover(
			middlewares.WithRecoverLogger(h.log),
			middlewares.WithRecoverHandler(func(w http.ResponseWriter, r *http.Request, _ *middlewares.PanicError) {
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error:     http.StatusText(http.StatusInternalServerError),
					RequestID: middlewares.GetRequestID(r.Context()),
				})
			}),
		),
	)

	r.NotFound(h.handle(func(http.ResponseWriter, *http.Request) error {
		return ErrNotFound("Route not found")
	}))
	r.MethodNotAllowed(h.handle(func(http.ResponseWriter, *http.Request) error {
		return NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	}))

	r.Post("/send-assignment-email", h.handle(h.sendAssignment))
	r.Post("/preview-assignment-email", h.handle(h.previewAssignment))
	r.Post("/send-email", h.handle(h.sendEmail))
	r.Get("/ping", h.ping)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.LivenessHandler())
		r.Get("/ready", health.ReadinessHandler(h.checks,
			health.WithTimeout(h.checkTimeout),
			health.WithLogger(h.log),
		))
	})

	return r
}
