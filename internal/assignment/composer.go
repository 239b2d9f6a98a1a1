package assignment

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	texttemplate "text/template"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

// UnknownClientName replaces a missing client name.
const UnknownClientName = "Unknown Client"

// SubjectSeparator joins the subject fields; downstream filters split on it.
const SubjectSeparator = " :: "

//go:embed templates/*
var templatesFS embed.FS

var textTmpl = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/assignment.txt"))

var htmlTmpl = template.Must(template.New("assignment.html").
	Funcs(template.FuncMap{"nl2br": nl2br}).
	ParseFS(templatesFS, "templates/assignment.html"))

// Composer builds assignment emails. Compose is a pure function of its input
// and the composer's configuration.
type Composer struct {
	cta template.HTML
	cfg Config
}

// NewComposer renders the call-to-action once and returns a composer.
func NewComposer(cfg Config, md *mailer.Markdown) (*Composer, error) {
	cta, err := md.Render(fmt.Sprintf(
		"Please [!button|Log in to ATS Portal](%s) to view full job details and start aligning candidates.",
		cfg.PortalURL,
	))
	if err != nil {
		return nil, err
	}

	return &Composer{
		// Rendered by goldmark from a constant template and the configured URL.
		cta: template.HTML(cta), //nolint:gosec
		cfg: cfg,
	}, nil
}

// letter is the data shared by the text and HTML templates.
type letter struct {
	RecruiterName string
	Title         string
	ClientName    string
	Mode          string
	Location      string
	Salary        string
	Description   string
	PortalURL     string
	TeamName      string
	CallToAction  template.HTML
}

// Subject formats the fixed subject line.
func Subject(title, clientName, mode string) string {
	return "New Job Assigned: " + title + SubjectSeparator + clientName + SubjectSeparator + mode
}

// Compose builds the email for a resolution. It never fails: missing values
// render as empty strings and a missing client as UnknownClientName.
func (c *Composer) Compose(res Resolution) mailer.Email {
	clientName := UnknownClientName
	if res.Client != nil && strings.TrimSpace(res.Client.Name) != "" {
		clientName = res.Client.Name
	}

	description := res.Preview
	if description == "" {
		description = NoDescriptionText
	}

	data := letter{
		RecruiterName: res.Recruiter.FullName,
		Title:         res.Job.Title,
		ClientName:    clientName,
		Mode:          res.Job.Mode,
		Location:      res.Job.Location,
		Salary:        salaryRange(res.Job.SalaryMin, res.Job.SalaryMax),
		Description:   description,
		PortalURL:     c.cfg.PortalURL,
		TeamName:      c.cfg.TeamName,
		CallToAction:  c.cta,
	}

	email := mailer.Email{
		To:      res.Recruiter.Email,
		Subject: Subject(res.Job.Title, clientName, res.Job.Mode),
		Text:    render(textTmpl, data),
		HTML:    render(htmlTmpl, data),
		Tags:    mailer.Tags{"category": "job_assignment"},
	}

	if c.cfg.StandingCC != "" {
		email.CC = []string{c.cfg.StandingCC}
	}
	if res.Attachment != nil {
		email.Attachments = []mailer.Attachment{*res.Attachment}
	}

	return email
}

type executor interface {
	Execute(wr io.Writer, data any) error
}

// render executes a parsed template into a string. The embedded templates only
// reference letter fields, so execution cannot fail on valid data.
func render(t executor, data letter) string {
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.String()
}

func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br/>")) //nolint:gosec
}

func salaryRange(minSalary, maxSalary *float64) string {
	format := func(v *float64) string {
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	switch {
	case minSalary != nil && maxSalary != nil:
		return format(minSalary) + " - " + format(maxSalary)
	case minSalary != nil:
		return "from " + format(minSalary)
	case maxSalary != nil:
		return "up to " + format(maxSalary)
	default:
		return ""
	}
}
