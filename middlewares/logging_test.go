package middlewares_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/middlewares"
	"github.com/mle-ats/assignmail/pkg/logger"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "ok", status: http.StatusOK, level: `"level":"INFO"`},
		{name: "client error", status: http.StatusNotFound, level: `"level":"WARN"`},
		{name: "server error", status: http.StatusBadGateway, level: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "json"})
			h := middlewares.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-email", nil))

			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, buf.String(), tt.level)
			require.Contains(t, buf.String(), `"path":"/send-email"`)
			require.Contains(t, buf.String(), `"size":4`)
		})
	}
}
