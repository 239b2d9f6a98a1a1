package assignment

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mle-ats/assignmail/internal/records"
	"github.com/mle-ats/assignmail/pkg/logger"
	"github.com/mle-ats/assignmail/pkg/mailer"
	"github.com/mle-ats/assignmail/pkg/storage"
)

// Resolver turns a recruiter id and a job id into a Resolution.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	records records.Store
	files   storage.Downloader
	log     *slog.Logger
	bucket  string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for degraded lookups.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResolver creates a resolver reading rows from store and uploaded
// descriptions from files in bucket.
func NewResolver(store records.Store, files storage.Downloader, bucket string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		records: store,
		files:   files,
		bucket:  bucket,
		log:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve gathers the records and job description for one assignment.
//
// The recruiter and job are read concurrently; when both fail the recruiter
// error is returned. Once the job is known, the client lookup and the
// description download run concurrently. A failed
// client lookup leaves Client nil; every other failure aborts with one of
// ErrMissingInput, ErrRecruiterNotFound, ErrJobNotFound or ErrAttachmentFetch
// joined with the cause.
func (r *Resolver) Resolve(ctx context.Context, recruiterID, jobID string) (*Resolution, error) {
	recruiterID = strings.TrimSpace(recruiterID)
	jobID = strings.TrimSpace(jobID)
	if recruiterID == "" || jobID == "" {
		return nil, ErrMissingInput
	}

	var (
		res                  Resolution
		recruiterErr, jobErr error
		lookups              errgroup.Group
	)
	lookups.Go(func() error {
		res.Recruiter, recruiterErr = r.recruiter(ctx, recruiterID)
		return nil
	})
	lookups.Go(func() error {
		res.Job, jobErr = r.job(ctx, jobID)
		return nil
	})
	_ = lookups.Wait()
	// Recruiter errors take precedence.
	if recruiterErr != nil {
		return nil, recruiterErr
	}
	if jobErr != nil {
		return nil, jobErr
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.Client = r.client(gctx, res.Job.ClientID)
		return nil
	})
	g.Go(func() error {
		attachment, preview, err := r.description(gctx, res.Job)
		if err != nil {
			return err
		}
		res.Attachment = attachment
		res.Preview = preview
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Resolver) recruiter(ctx context.Context, id string) (Recruiter, error) {
	row, err := r.records.GetByID(ctx, records.TableUsers, id)
	if err != nil {
		return Recruiter{}, errors.Join(ErrRecruiterNotFound, err)
	}
	recruiter := recruiterFromRow(row)
	if recruiter.Email == "" {
		return Recruiter{}, errors.Join(ErrRecruiterNotFound, errRecruiterNoEmail)
	}
	return recruiter, nil
}

func (r *Resolver) job(ctx context.Context, id string) (Job, error) {
	row, err := r.records.GetByID(ctx, records.TableJobs, id)
	if err != nil {
		return Job{}, errors.Join(ErrJobNotFound, err)
	}
	return jobFromRow(row), nil
}

// client never fails: the email is still worth sending without a client name.
func (r *Resolver) client(ctx context.Context, id string) *Client {
	if id == "" {
		return nil
	}
	row, err := r.records.GetByID(ctx, records.TableClients, id)
	if err != nil {
		r.log.WarnContext(ctx, "client lookup failed, using fallback name",
			slog.String("client_id", id),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return clientFromRow(row)
}

// description returns the attachment and body preview for the job's description.
func (r *Resolver) description(ctx context.Context, job Job) (*mailer.Attachment, string, error) {
	switch job.DescriptionKind {
	case DescriptionInlineText:
		return &mailer.Attachment{
			Filename:    InlineFilename(job.Title),
			ContentType: "text/plain",
			Content:     []byte(job.InlineText),
		}, Preview(job.InlineText), nil

	case DescriptionUploadedFile:
		data, err := r.files.Download(ctx, r.bucket, job.FileRef)
		if err != nil {
			return nil, "", errors.Join(ErrAttachmentFetch, err)
		}
		if data == nil {
			// An empty upload is still attached.
			data = []byte{}
		}
		filename := FilenameFromRef(job.FileRef)
		if filename == "" {
			filename = "JD_" + job.Title
		}
		return &mailer.Attachment{
			Filename:    filename,
			ContentType: ContentTypeFor(filename),
			Content:     data,
		}, AttachmentIncludedText, nil

	default:
		return nil, NoDescriptionText, nil
	}
}
