package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"lesson plan.pdf", "lesson_plan.pdf"},
		{"Intro to Fractions!", "Intro_to_Fractions_"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"report-2024.docx", "report-2024.docx"},
		{"résumé.pdf", "r_sum_.pdf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeFilename(tt.in))
	}
}
