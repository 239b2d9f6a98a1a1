// Package middlewares provides net/http middlewares for the API server.
//
// All constructors return func(http.Handler) http.Handler and compose with
// chi's Router.Use.
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.CORS(),                        // answer preflight first
//	    middlewares.RequestID(),                   // ID for all later logs
//	    middlewares.Logging(log),
//	    middlewares.Recover(middlewares.WithRecoverLogger(log)),
//	)
//
// Build the logger with RequestIDExtractor so every record written with a
// request context carries "request_id":
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
package middlewares
