package mailer

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"
)

// DefaultMaxAttachmentSize caps reference attachment downloads (25MB, the Gmail limit).
const DefaultMaxAttachmentSize = 25 << 20

// defaultFetchClient is used when a transport does not provide its own client.
var defaultFetchClient = &http.Client{Timeout: 30 * time.Second}

// ResolveAttachments returns a copy of attachments where every reference
// attachment has been downloaded into byte form. Byte attachments pass through.
// Transports without native URL support call this before building a message.
func ResolveAttachments(ctx context.Context, client *http.Client, attachments []Attachment, maxSize int64) ([]Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	out := make([]Attachment, len(attachments))
	for i, a := range attachments {
		if !a.IsReference() {
			out[i] = a
			continue
		}
		fetched, err := FetchAttachment(ctx, client, a, maxSize)
		if err != nil {
			return nil, err
		}
		out[i] = fetched
	}
	return out, nil
}

// FetchAttachment downloads a reference attachment.
// The content type is taken from the attachment, then the response, then the URL extension.
func FetchAttachment(ctx context.Context, client *http.Client, a Attachment, maxSize int64) (Attachment, error) {
	parsed, err := url.Parse(a.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Attachment{}, fmt.Errorf("%w: invalid url %q", ErrFetchAttachment, a.URL)
	}
	if client == nil {
		client = defaultFetchClient
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxAttachmentSize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %v", ErrFetchAttachment, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %v", ErrFetchAttachment, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Attachment{}, fmt.Errorf("%w: status %d", ErrFetchAttachment, resp.StatusCode)
	}
	if resp.ContentLength > maxSize {
		return Attachment{}, ErrAttachmentTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %v", ErrFetchAttachment, err)
	}
	if int64(len(data)) > maxSize {
		return Attachment{}, ErrAttachmentTooLarge
	}

	contentType := a.ContentType
	if contentType == "" {
		contentType = resp.Header.Get("Content-Type")
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(parsed.Path))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return Attachment{
		Filename:    a.Filename,
		ContentType: contentType,
		Content:     data,
	}, nil
}
