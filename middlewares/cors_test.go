package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/middlewares"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("no origin header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		middlewares.CORS()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard by default", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/send-email", nil)
		req.Header.Set("Origin", "https://ats.example.com")
		rec := httptest.NewRecorder()
		middlewares.CORS()(okHandler()).ServeHTTP(rec, req)

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight is answered", func(t *testing.T) {
		t.Parallel()

		called := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

		req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
		req.Header.Set("Origin", "https://ats.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		middlewares.CORS()(next).ServeHTTP(rec, req)

		require.False(t, called)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		require.Equal(t, "43200", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("explicit origins are echoed", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("https://ats.example.com"),
			middlewares.WithAllowCredentials(),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://ats.example.com")
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, req)

		require.Equal(t, "https://ats.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		middlewares.CORS(middlewares.WithAllowOrigins("https://ats.example.com"))(okHandler()).ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
