package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/internal/records"
	"github.com/mle-ats/assignmail/pkg/mailer"
)

func newTestService(t *testing.T, store records.Store, transport Transport) *Service {
	t.Helper()
	return NewService(
		NewResolver(store, &mockDownloader{}, testBucket),
		newTestComposer(t, testConfig()),
		transport,
		nil,
	)
}

func happyStore() *mockStore {
	store := &mockStore{}
	store.On("GetByID", mock.Anything, records.TableUsers, "rec-1").Return(recruiterRow(), nil)
	store.On("GetByID", mock.Anything, records.TableJobs, "job-1").Return(jobRow(nil), nil)
	store.On("GetByID", mock.Anything, records.TableClients, "cli-1").Return(clientRow(), nil)
	return store
}

func TestService_Send(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{}
	transport.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return e.To == "jane@example.com" &&
			e.Subject == "New Job Assigned: Backend Engineer :: Acme :: Remote"
	})).Return("msg-123", nil)

	id, err := newTestService(t, happyStore(), transport).Send(context.Background(), "rec-1", "job-1")

	require.NoError(t, err)
	require.Equal(t, "msg-123", id)
	transport.AssertExpectations(t)
}

func TestService_Send_ResolveFailureSkipsTransport(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{}

	_, err := newTestService(t, &mockStore{}, transport).Send(context.Background(), "", "job-1")

	require.ErrorIs(t, err, ErrMissingInput)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Send_DeliveryFailure(t *testing.T) {
	t.Parallel()

	smtpErr := errors.New("535 auth failed")
	transport := &mockTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return("", smtpErr)

	_, err := newTestService(t, happyStore(), transport).Send(context.Background(), "rec-1", "job-1")

	require.ErrorIs(t, err, ErrDelivery)
	require.ErrorIs(t, err, smtpErr)
}

func TestService_Compose(t *testing.T) {
	t.Parallel()

	transport := &mockTransport{}

	email, err := newTestService(t, happyStore(), transport).Compose(context.Background(), "rec-1", "job-1")

	require.NoError(t, err)
	require.Equal(t, "jane@example.com", email.To)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Send_EmptyUploadIsDelivered(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	store.On("GetByID", mock.Anything, records.TableUsers, "rec-1").Return(recruiterRow(), nil)
	store.On("GetByID", mock.Anything, records.TableJobs, "job-1").
		Return(jobRow(records.Row{"jd_type": "upload", "jd_url": "jd/empty.txt"}), nil)
	store.On("GetByID", mock.Anything, records.TableClients, "cli-1").Return(clientRow(), nil)
	files := &mockDownloader{}
	files.On("Download", mock.Anything, testBucket, "jd/empty.txt").Return([]byte{}, nil)

	sender := &mockTransport{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return len(e.Attachments) == 1 &&
			e.Attachments[0].Filename == "empty.txt" &&
			len(e.Attachments[0].Content) == 0
	})).Return("msg-empty", nil)

	svc := NewService(
		NewResolver(store, files, testBucket),
		newTestComposer(t, testConfig()),
		mailer.New(sender),
		nil,
	)

	id, err := svc.Send(context.Background(), "rec-1", "job-1")

	require.NoError(t, err)
	require.Equal(t, "msg-empty", id)
	sender.AssertExpectations(t)
}

func TestService_Compose_ClientLookupFailure(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	store.On("GetByID", mock.Anything, records.TableUsers, "rec-1").Return(recruiterRow(), nil)
	store.On("GetByID", mock.Anything, records.TableJobs, "job-1").Return(jobRow(nil), nil)
	store.On("GetByID", mock.Anything, records.TableClients, "cli-1").Return(nil, errors.New("connection reset"))

	email, err := newTestService(t, store, &mockTransport{}).Compose(context.Background(), "rec-1", "job-1")

	require.NoError(t, err)
	require.Equal(t, "New Job Assigned: Backend Engineer :: Unknown Client :: Remote", email.Subject)
	require.Contains(t, email.Text, `for the client "Unknown Client"`)
}
