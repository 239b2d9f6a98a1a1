package assignment

import (
	"path"
	"strings"
	"unicode/utf8"
)

const (
	// NoDescriptionText is shown when the job has no description.
	NoDescriptionText = "No JD provided"

	// AttachmentIncludedText is shown when the description is an uploaded file.
	AttachmentIncludedText = "Attachment included"

	// PreviewLength is the number of characters of inline text shown in the body.
	PreviewLength = 200

	// PreviewEllipsis marks a truncated preview.
	PreviewEllipsis = "..."

	mimeOctetStream = "application/octet-stream"
)

// contentTypes is the fixed extension table for uploaded descriptions.
var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"doc":  "application/msword",
	"txt":  "text/plain",
}

// ContentTypeFor maps a filename to its attachment MIME type.
// Unknown or missing extensions map to application/octet-stream.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return mimeOctetStream
}

// FilenameFromRef returns the last path segment of a storage reference.
func FilenameFromRef(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// InlineFilename names the text attachment built from an inline description.
func InlineFilename(title string) string {
	return "JD_" + title + ".txt"
}

// Preview returns the first PreviewLength characters of text, followed by
// PreviewEllipsis when anything was cut.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}

	n := 0
	for i := range text {
		if n == PreviewLength {
			return text[:i] + PreviewEllipsis
		}
		n++
	}
	return text
}
