package middlewares_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/middlewares"
	"github.com/mle-ats/assignmail/pkg/logger"
)

func panicking(http.ResponseWriter, *http.Request) {
	panic("boom")
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers and answers 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"})
		h := middlewares.Recover(middlewares.WithRecoverLogger(log))(http.HandlerFunc(panicking))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, buf.String(), "panic recovered")
		require.Contains(t, buf.String(), `"panic":"boom"`)
		require.Contains(t, buf.String(), "stack")
	})

	t.Run("custom handler receives the panic", func(t *testing.T) {
		t.Parallel()

		var got *middlewares.PanicError
		h := middlewares.Recover(
			middlewares.WithRecoverDisablePrintStack(),
			middlewares.WithRecoverHandler(func(w http.ResponseWriter, _ *http.Request, pe *middlewares.PanicError) {
				got = pe
				w.WriteHeader(http.StatusTeapot)
			}),
		)(http.HandlerFunc(panicking))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.NotNil(t, got)
		require.Equal(t, "boom", got.Value)
		require.Nil(t, got.Stack)
		require.Equal(t, "panic: boom", got.Error())
	})

	t.Run("error values are unwrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("nil map write")
		pe := &middlewares.PanicError{Value: cause}
		require.ErrorIs(t, pe, cause)
		require.NoError(t, (&middlewares.PanicError{Value: "boom"}).Unwrap())
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
