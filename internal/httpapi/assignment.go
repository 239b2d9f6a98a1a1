package httpapi

import (
	"net/http"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

type assignmentRequest struct {
	RecruiterID string `json:"recruiterId"`
	JobID       string `json:"jobId"`
}

type sentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func (h *Handler) sendAssignment(w http.ResponseWriter, r *http.Request) error {
	var req assignmentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		return err
	}

	id, err := h.assignments.Send(r.Context(), req.RecruiterID, req.JobID)
	if err != nil {
		return assignmentError(err)
	}

	writeJSON(w, http.StatusOK, sentResponse{Message: "Email sent successfully", ID: id})
	return nil
}

type attachmentPreview struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

type previewResponse struct {
	To          string              `json:"to"`
	Subject     string              `json:"subject"`
	Text        string              `json:"text"`
	HTML        string              `json:"html,omitempty"`
	CC          []string            `json:"cc,omitempty"`
	Attachments []attachmentPreview `json:"attachments"`
}

func newPreviewResponse(email mailer.Email) previewResponse {
	resp := previewResponse{
		To:          email.To,
		CC:          email.CC,
		Subject:     email.Subject,
		Text:        email.Text,
		HTML:        email.HTML,
		Attachments: make([]attachmentPreview, 0, len(email.Attachments)),
	}
	for _, a := range email.Attachments {
		resp.Attachments = append(resp.Attachments, attachmentPreview{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        len(a.Content),
		})
	}
	return resp
}

func (h *Handler) previewAssignment(w http.ResponseWriter, r *http.Request) error {
	var req assignmentRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		return err
	}

	email, err := h.assignments.Compose(r.Context(), req.RecruiterID, req.JobID)
	if err != nil {
		return assignmentError(err)
	}

	writeJSON(w, http.StatusOK, newPreviewResponse(email))
	return nil
}
