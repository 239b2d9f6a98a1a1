package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFileServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/typed.bin", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-custom")
		_, _ = w.Write([]byte("typed"))
	})
	mux.HandleFunc("/report.pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	mux.HandleFunc("/big.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAttachment(t *testing.T) {
	t.Parallel()

	srv := newFileServer(t)
	ctx := context.Background()

	t.Run("response content type", func(t *testing.T) {
		t.Parallel()

		a, err := FetchAttachment(ctx, srv.Client(), Attachment{Filename: "f", URL: srv.URL + "/typed.bin"}, 0)
		require.NoError(t, err)
		require.Equal(t, "application/x-custom", a.ContentType)
		require.Equal(t, []byte("typed"), a.Content)
		require.False(t, a.IsReference())
	})

	t.Run("explicit content type wins", func(t *testing.T) {
		t.Parallel()

		a, err := FetchAttachment(ctx, srv.Client(), Attachment{Filename: "f", URL: srv.URL + "/typed.bin", ContentType: "text/plain"}, 0)
		require.NoError(t, err)
		require.Equal(t, "text/plain", a.ContentType)
	})

	t.Run("extension fallback", func(t *testing.T) {
		t.Parallel()

		a, err := FetchAttachment(ctx, srv.Client(), Attachment{Filename: "report.pdf", URL: srv.URL + "/report.pdf"}, 0)
		require.NoError(t, err)
		require.Equal(t, "application/pdf", a.ContentType)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		_, err := FetchAttachment(ctx, srv.Client(), Attachment{Filename: "big.txt", URL: srv.URL + "/big.txt"}, 16)
		require.ErrorIs(t, err, ErrAttachmentTooLarge)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := FetchAttachment(ctx, srv.Client(), Attachment{Filename: "x", URL: srv.URL + "/missing"}, 0)
		require.ErrorIs(t, err, ErrFetchAttachment)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		t.Parallel()

		_, err := FetchAttachment(ctx, nil, Attachment{Filename: "x", URL: "file:///etc/passwd"}, 0)
		require.ErrorIs(t, err, ErrFetchAttachment)
	})
}

func TestResolveAttachments(t *testing.T) {
	t.Parallel()

	srv := newFileServer(t)

	in := []Attachment{
		{Filename: "inline.txt", ContentType: "text/plain", Content: []byte("jd")},
		{Filename: "typed.bin", URL: srv.URL + "/typed.bin"},
	}

	out, err := ResolveAttachments(context.Background(), srv.Client(), in, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, in[0], out[0])
	require.Equal(t, []byte("typed"), out[1].Content)
	require.Empty(t, out[1].URL)
	require.Equal(t, srv.URL+"/typed.bin", in[1].URL)

	none, err := ResolveAttachments(context.Background(), nil, nil, 0)
	require.NoError(t, err)
	require.Nil(t, none)
}
