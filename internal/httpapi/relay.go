package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

// addressList accepts a single address, a comma separated string or an array.
type addressList []string

func (l *addressList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	var list []string
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
	} else {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.New("expected a string or an array of strings")
		}
		list = strings.Split(s, ",")
	}

	out := make([]string, 0, len(list))
	for _, a := range list {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	*l = out
	return nil
}

type relayAttachment struct {
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	Encoding    string `json:"encoding"`
}

type relayRequest struct {
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text"`
	HTML        string            `json:"html"`
	ReplyTo     string            `json:"replyTo"`
	CC          addressList       `json:"cc"`
	BCC         addressList       `json:"bcc"`
	Attachments []relayAttachment `json:"attachments"`
}

type relayFailure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// toEmail converts the request. Attachment content is literal text unless
// encoding is "base64".
func (req relayRequest) toEmail() (*mailer.Email, error) {
	email := &mailer.Email{
		To:      strings.TrimSpace(req.To),
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
		ReplyTo: req.ReplyTo,
		CC:      req.CC,
		BCC:     req.BCC,
	}

	for i, a := range req.Attachments {
		att := mailer.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			URL:         a.Path,
		}
		if a.Content != "" {
			switch strings.ToLower(a.Encoding) {
			case "base64":
				data, err := base64.StdEncoding.DecodeString(a.Content)
				if err != nil {
					return nil, fmt.Errorf("attachment %d: invalid base64 content", i)
				}
				att.Content = data
			case "", "utf8", "utf-8":
				att.Content = []byte(a.Content)
			default:
				return nil, fmt.Errorf("attachment %d: unsupported encoding %q", i, a.Encoding)
			}
		}
		if att.Filename == "" && att.URL != "" {
			att.Filename = filenameFromURL(att.URL)
		}
		email.Attachments = append(email.Attachments, att)
	}

	return email, nil
}

// filenameFromURL returns the last path segment of rawURL without its query
// string, or "" when the URL has no usable name.
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) error {
	var req relayRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		return err
	}

	email, err := req.toEmail()
	if err != nil {
		return ErrBadRequest(err.Error(), WithError(err))
	}
	if err := mailer.Validate(email); err != nil {
		return ErrBadRequest(err.Error(), WithError(err))
	}

	id, err := h.relay.Send(r.Context(), email)
	if err != nil {
		h.log.ErrorContext(r.Context(), "relay send failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, relayFailure{
			Message: "Failed to send email",
			Error:   err.Error(),
		})
		return nil
	}

	writeJSON(w, http.StatusOK, sentResponse{Message: "Email sent successfully", ID: id})
	return nil
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.checkTimeout)
	defer cancel()

	if err := h.relay.Verify(ctx); err != nil {
		h.log.ErrorContext(r.Context(), "transport connection failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, "SMTP server connection failed")
		return
	}
	writeText(w, http.StatusOK, "SMTP server is alive")
}
