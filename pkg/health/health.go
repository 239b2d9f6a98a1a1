package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/mle-ats/assignmail/pkg/logger"
)

// Probe statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

const defaultTimeout = 5 * time.Second

// CheckFunc reports a dependency as unhealthy by returning an error.
// db.Healthcheck, storage.S3Storage.Healthcheck and mailer.Mailer.Verify fit it.
type CheckFunc func(ctx context.Context) error

// Checks names the dependencies probed for readiness.
type Checks map[string]CheckFunc

// Response is the probe body.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of one dependency probe.
type Check struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type options struct {
	log     *slog.Logger
	timeout time.Duration
}

// Option configures probing.
type Option func(*options)

// WithTimeout bounds the whole probe run.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger logs failing checks at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: logger.NewNope(), timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run probes every dependency concurrently. The response is unhealthy when
// any check fails or outlives the timeout.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return run(ctx, checks, buildOptions(opts))
}

type namedCheck struct {
	name string
	Check
}

func run(ctx context.Context, checks Checks, o options) *Response {
	resp := &Response{Status: StatusHealthy}
	if len(checks) == 0 {
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	out := make(chan namedCheck, len(checks))
	for name, fn := range checks {
		go func() {
			start := time.Now()
			c := Check{Status: StatusHealthy}
			if err := fn(ctx); err != nil {
				c.Status, c.Error = StatusUnhealthy, err.Error()
			}
			c.Duration = time.Since(start).Round(time.Millisecond).String()
			out <- namedCheck{name: name, Check: c}
		}()
	}

	resp.Checks = make(map[string]Check, len(checks))
	record := func(nc namedCheck) {
		resp.Checks[nc.name] = nc.Check
		if nc.Status == StatusUnhealthy {
			resp.Status = StatusUnhealthy
			o.log.WarnContext(ctx, "health check failed",
				slog.String("check", nc.name),
				slog.String("error", nc.Error),
			)
		}
	}

	for range checks {
		select {
		case nc := <-out:
			record(nc)
		case <-ctx.Done():
			// Checks that ignore ctx are reported as timed out.
			for name := range checks {
				if _, ok := resp.Checks[name]; !ok {
					record(namedCheck{name: name, Check: Check{
						Status:   StatusUnhealthy,
						Error:    ctx.Err().Error(),
						Duration: o.timeout.String(),
					}})
				}
			}
			return resp
		}
	}

	return resp
}
