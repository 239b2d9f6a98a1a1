package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	id, err := sender.Send(context.Background(), &Email{
		To:          "jane@example.com",
		CC:          []string{"ops@example.com"},
		Subject:     "New Job Assigned",
		Text:        "Hi Jane",
		Attachments: []Attachment{{Filename: "JD_Backend.txt", Content: []byte("jd")}},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"delivery_id":"`+id+`"`)
	require.Contains(t, out, `"to":"jane@example.com"`)
	require.Contains(t, out, `"subject":"New Job Assigned"`)
	require.Contains(t, out, "JD_Backend.txt")
}
