package assignment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mle-ats/assignmail/internal/records"
	"github.com/mle-ats/assignmail/pkg/mailer"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByID(ctx context.Context, table, id string) (records.Row, error) {
	args := m.Called(ctx, table, id)
	row, _ := args.Get(0).(records.Row)
	return row, args.Error(1)
}

type mockDownloader struct {
	mock.Mock
}

func (m *mockDownloader) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Send(ctx context.Context, email *mailer.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func recruiterRow() records.Row {
	return records.Row{"id": "rec-1", "email": "jane@example.com", "full_name": "Jane Doe"}
}

func jobRow(overrides records.Row) records.Row {
	row := records.Row{
		"id":        "job-1",
		"title":     "Backend Engineer",
		"client_id": "cli-1",
		"mode":      "Remote",
		"jd_type":   nil,
		"jd_text":   nil,
		"jd_url":    nil,
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func clientRow() records.Row {
	return records.Row{"id": "cli-1", "name": "Acme"}
}
