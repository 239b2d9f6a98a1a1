package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have text or HTML content")

	// ErrInvalidAttachment indicates an attachment without a filename or without content.
	ErrInvalidAttachment = errors.New("attachment must have a filename and content or url")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrVerifyFailed indicates the transport connectivity check failed.
	ErrVerifyFailed = errors.New("failed to verify mail transport")

	// ErrFetchAttachment indicates a reference attachment could not be downloaded.
	ErrFetchAttachment = errors.New("failed to fetch attachment")

	// ErrAttachmentTooLarge indicates a reference attachment exceeded the size limit.
	ErrAttachmentTooLarge = errors.New("attachment exceeds size limit")
)
