package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type verifyingSender struct {
	mockSender
	err error
}

func (v *verifyingSender) Verify(context.Context) error {
	return v.err
}

func validEmail() *Email {
	return &Email{
		To:      "jane@example.com",
		Subject: "Hello",
		Text:    "Hi Jane",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Email)
		want   error
	}{
		{name: "valid", mutate: func(*Email) {}},
		{name: "no recipient", mutate: func(e *Email) { e.To = "  " }, want: ErrNoRecipient},
		{name: "no subject", mutate: func(e *Email) { e.Subject = "" }, want: ErrNoSubject},
		{name: "no content", mutate: func(e *Email) { e.Text = "" }, want: ErrNoContent},
		{name: "html only", mutate: func(e *Email) { e.Text = ""; e.HTML = "<p>Hi</p>" }},
		{
			name:   "attachment without filename",
			mutate: func(e *Email) { e.Attachments = []Attachment{{Content: []byte("x")}} },
			want:   ErrInvalidAttachment,
		},
		{
			name:   "attachment without content",
			mutate: func(e *Email) { e.Attachments = []Attachment{{Filename: "a.txt"}} },
			want:   ErrInvalidAttachment,
		},
		{
			name:   "empty byte attachment",
			mutate: func(e *Email) { e.Attachments = []Attachment{{Filename: "empty.txt", Content: []byte{}}} },
		},
		{
			name:   "reference attachment",
			mutate: func(e *Email) { e.Attachments = []Attachment{{Filename: "a.pdf", URL: "https://x.test/a.pdf"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email := validEmail()
			tt.mutate(email)

			err := Validate(email)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}

	require.ErrorIs(t, Validate(nil), ErrNoRecipient)
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	t.Run("delivers and returns id", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.AnythingOfType("*mailer.Email")).Return("msg-1", nil).Once()

		id, err := New(sender).Send(context.Background(), validEmail())
		require.NoError(t, err)
		require.Equal(t, "msg-1", id)
		sender.AssertExpectations(t)
	})

	t.Run("derives text from html", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.Text == "Hello\nWorld"
		})).Return("msg-2", nil).Once()

		email := validEmail()
		email.Text = ""
		email.HTML = "<p>Hello</p><p>World</p>"

		_, err := New(sender).Send(context.Background(), email)
		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("invalid email never reaches sender", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		email := validEmail()
		email.Subject = ""

		_, err := New(sender).Send(context.Background(), email)
		require.ErrorIs(t, err, ErrNoSubject)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("sender failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return("", cause).Once()

		id, err := New(sender, WithLogger(nil)).Send(context.Background(), validEmail())
		require.Empty(t, id)
		require.ErrorIs(t, err, ErrSendFailed)
		require.ErrorIs(t, err, cause)
	})
}

func TestMailer_Verify(t *testing.T) {
	t.Parallel()

	t.Run("sender without check", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, New(&mockSender{}).Verify(context.Background()))
	})

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, New(&verifyingSender{}).Verify(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: timeout")
		err := New(&verifyingSender{err: cause}).Verify(context.Background())
		require.ErrorIs(t, err, ErrVerifyFailed)
		require.ErrorIs(t, err, cause)
	})
}
