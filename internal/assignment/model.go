package assignment

import "github.com/mle-ats/assignmail/pkg/mailer"

// DescriptionKind tells how a job's description is stored.
type DescriptionKind int

const (
	// DescriptionNone means the job has no description.
	DescriptionNone DescriptionKind = iota
	// DescriptionInlineText means the description is stored as text on the job.
	DescriptionInlineText
	// DescriptionUploadedFile means the description is a file in object storage.
	DescriptionUploadedFile
)

func (k DescriptionKind) String() string {
	switch k {
	case DescriptionInlineText:
		return "text"
	case DescriptionUploadedFile:
		return "upload"
	default:
		return "none"
	}
}

// Recruiter is the assignee; Email is always non-empty once resolved.
type Recruiter struct {
	Email    string
	FullName string
}

// Job is the assigned role. At most one of InlineText and FileRef is set,
// matching DescriptionKind.
type Job struct {
	SalaryMin       *float64
	SalaryMax       *float64
	Title           string
	ClientID        string
	Mode            string
	Location        string
	InlineText      string
	FileRef         string
	DescriptionKind DescriptionKind
}

// Client is the hiring company.
type Client struct {
	Name string
}

// Resolution is everything the composer needs, gathered for one request.
type Resolution struct {
	Client     *Client            // nil when unknown
	Attachment *mailer.Attachment // nil when there is no description to attach
	Recruiter  Recruiter
	Preview    string // description text shown in the body
	Job        Job
}
