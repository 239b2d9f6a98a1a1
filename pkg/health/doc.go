// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"records": db.Healthcheck(pool),
//		"mail":    m.Verify,
//	}, health.WithLogger(log)))
//
// Checks run concurrently under a shared timeout (5s by default).
package health
