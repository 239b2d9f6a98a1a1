package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler answers 200 while the process can serve HTTP.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond(w, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler probes checks on every request and answers 503 when any fails.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	o := buildOptions(opts)
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, run(r.Context(), checks, o))
	}
}

func respond(w http.ResponseWriter, resp *Response) {
	code := http.StatusOK
	if resp.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
