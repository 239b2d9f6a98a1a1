package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mle-ats/assignmail/middlewares"
)

// handlerFunc is an http handler that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// errorResponse is the JSON body of every error response.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// handle adapts a handlerFunc, rendering returned errors as JSON.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		he, ok := AsHTTPError(err)
		if !ok {
			he = ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
		}
		he.RequestID = middlewares.GetRequestID(r.Context())

		level := slog.LevelWarn
		if he.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		attrs := []slog.Attr{slog.Int("status", he.Code), slog.String("message", he.Message)}
		if he.Err != nil {
			attrs = append(attrs, slog.String("error", he.Err.Error()))
		}
		h.log.LogAttrs(r.Context(), level, "request failed", attrs...)

		writeJSON(w, he.Code, errorResponse{Error: he.Message, RequestID: he.RequestID})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, s)
}

// decodeJSON reads a size-limited JSON body into v.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large", WithError(err))
		}
		return ErrBadRequest("Invalid JSON body", WithError(err))
	}
	return nil
}
