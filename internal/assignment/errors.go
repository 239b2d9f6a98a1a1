package assignment

import "errors"

var (
	// ErrMissingInput indicates an empty recruiter or job id.
	ErrMissingInput = errors.New("assignment: missing recruiterId or jobId")

	// ErrRecruiterNotFound indicates the recruiter lookup failed or found nothing usable.
	ErrRecruiterNotFound = errors.New("assignment: recruiter not found")

	// ErrJobNotFound indicates the job lookup failed or found nothing.
	ErrJobNotFound = errors.New("assignment: job not found")

	// ErrAttachmentFetch indicates the uploaded job description could not be downloaded.
	ErrAttachmentFetch = errors.New("assignment: failed to fetch job description")

	// ErrDelivery indicates the composed email was rejected by the mail transport.
	ErrDelivery = errors.New("assignment: failed to deliver email")

	errRecruiterNoEmail = errors.New("recruiter has no email")
)
