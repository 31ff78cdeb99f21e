package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// TypeLine builds the document subtitle, e.g. "Type: Lesson".
func TypeLine(generationType string) string {
	capitalized := generationType
	if capitalized != "" {
		capitalized = strings.ToUpper(capitalized[:1]) + capitalized[1:]
	}
	return "Type: " + capitalized
}

// PDF renders a generation as a PDF document.
func PDF(title string, generationType string, content json.RawMessage) ([]byte, error) {
	sections, err := Flatten(content)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.MultiCell(0, 12, tr(title), "", "C", false)

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(100, 100, 100)
	doc.MultiCell(0, 8, tr(TypeLine(generationType)), "", "C", false)
	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)

	for _, section := range sections {
		doc.SetFont("Helvetica", "B", 14)
		doc.MultiCell(0, 8, tr(section.Heading), "", "L", false)

		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, tr(section.Body), "", "L", false)
		doc.Ln(4)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
