package assignment

import (
	"strings"

	"github.com/mle-ats/assignmail/internal/records"
)

// jd_type values written by the ATS front end.
const (
	jdTypeUpload = "upload"
	jdTypeText   = "text"
)

func recruiterFromRow(row records.Row) Recruiter {
	return Recruiter{
		Email:    strings.TrimSpace(row.String("email")),
		FullName: row.String("full_name"),
	}
}

// jobFromRow normalises the description columns into DescriptionKind.
// A jd_type without its payload column degrades to DescriptionNone.
func jobFromRow(row records.Row) Job {
	job := Job{
		Title:    row.String("title"),
		ClientID: strings.TrimSpace(row.String("client_id")),
		Mode:     row.String("mode"),
		Location: row.String("location"),
	}

	if v, ok := row.Float("salary_min"); ok {
		job.SalaryMin = &v
	}
	if v, ok := row.Float("salary_max"); ok {
		job.SalaryMax = &v
	}

	switch strings.ToLower(strings.TrimSpace(row.String("jd_type"))) {
	case jdTypeUpload:
		if ref := strings.TrimSpace(row.String("jd_url")); ref != "" {
			job.DescriptionKind = DescriptionUploadedFile
			job.FileRef = ref
		}
	case jdTypeText:
		if text := row.String("jd_text"); text != "" {
			job.DescriptionKind = DescriptionInlineText
			job.InlineText = text
		}
	}

	return job
}

func clientFromRow(row records.Row) *Client {
	name := strings.TrimSpace(row.String("name"))
	if name == "" {
		return nil
	}
	return &Client{Name: name}
}
