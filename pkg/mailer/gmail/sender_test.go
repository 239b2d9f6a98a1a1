package gmail

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{ClientID: "id"})
	require.ErrorIs(t, err, ErrMissingSender)

	_, err = New(context.Background(), Config{SenderEmail: "ats@example.com", ClientID: "id"})
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = New(context.Background(), Config{SenderEmail: "ats@example.com", CredentialsJSON: "{not json"})
	require.Error(t, err)
}

func TestNew_RefreshToken(t *testing.T) {
	t.Parallel()

	s, err := New(context.Background(), Config{
		SenderEmail:  "ats@example.com",
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "token",
	})
	require.NoError(t, err)
	require.NotNil(t, s.service)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	s := &Sender{
		httpClient: http.DefaultClient,
		config:     Config{SenderEmail: "ats@example.com", SenderName: "MLE ATS"},
	}

	raw, err := s.encode(context.Background(), &mailer.Email{
		To:          "jane@example.com",
		Subject:     "New Job Assigned",
		Text:        "Hi Jane",
		Attachments: []mailer.Attachment{{Filename: "JD.txt", ContentType: "text/plain", Content: []byte("jd")}},
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	require.Contains(t, string(decoded), "Subject: New Job Assigned")
	require.Contains(t, string(decoded), "jane@example.com")
	require.Contains(t, string(decoded), "JD.txt")
}
