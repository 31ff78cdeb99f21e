package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MimePdf  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// Text extracts plain text from an uploaded file. Extraction is best effort:
// unreadable or unsupported content yields an empty string, never an error
// that would block the upload.
func Text(filePath string, mimeType string) string {
	switch mimeType {
	case MimeText:
		data, err := os.ReadFile(filePath)
		if err != nil {
			return ""
		}
		return string(data)
	case MimePdf:
		return pdfText(filePath)
	case MimeDocx:
		// DOCX bodies are not extracted yet, the raw file is still stored
		// and available for download.
		return ""
	default:
		return ""
	}
}

func pdfText(filePath string) string {
	defer func() {
		// the pdf package panics on some malformed files
		recover()
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

// DeleteFile removes a stored upload. Missing files are not an error, the
// caller only cares that the path no longer exists.
func DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", filePath, err)
	}
	return nil
}
