// Package assignment builds and sends the "new job assigned" email.
//
// A Resolver reads the recruiter, job and client rows and resolves the job
// description into an optional attachment plus a body preview. A Composer
// turns that Resolution into a transport-agnostic mailer.Email. Service
// chains both and hands the email to a Transport.
//
// Failures are reported with sentinel errors joined with their cause:
//
//	ErrMissingInput       empty recruiter or job id (no store access happens)
//	ErrRecruiterNotFound  recruiter lookup failed or the row has no email
//	ErrJobNotFound        job lookup failed
//	ErrAttachmentFetch    uploaded description could not be downloaded
//	ErrDelivery           transport rejected the email
//
// A failed client lookup is not an error: the email names "Unknown Client".
package assignment
