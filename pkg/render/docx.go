package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCX renders a generation as a Word document.
func DOCX(title string, generationType string, content json.RawMessage) ([]byte, error) {
	sections, err := Flatten(content)
	if err != nil {
		return nil, err
	}

	doc := docx.New().WithDefaultTheme()

	titlePara := doc.AddParagraph().Justification("center")
	titlePara.AddText(title).Size("48").Bold()

	subtitlePara := doc.AddParagraph().Justification("center")
	subtitlePara.AddText(TypeLine(generationType)).Size("24").Color("646464")

	doc.AddParagraph()

	for _, section := range sections {
		doc.AddParagraph().AddText(section.Heading).Size("28").Bold()
		for _, line := range strings.Split(section.Body, "\n") {
			doc.AddParagraph().AddText(line).Size("22")
		}
		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render docx: %w", err)
	}
	return buf.Bytes(), nil
}
