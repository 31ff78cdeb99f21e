package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"lessonTitle", "Lesson Title"},
		{"learningObjectives", "Learning Objectives"},
		{"duration", "Duration"},
		{"gradeLevel", "Grade Level"},
		{"title", "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatKey(tt.key))
		})
	}
}

func TestTypeLine(t *testing.T) {
	assert.Equal(t, "Type: Lesson", TypeLine("lesson"))
	assert.Equal(t, "Type: Program", TypeLine("program"))
	assert.Equal(t, "Type: Assessment", TypeLine("assessment"))
}

func TestFlatten_PreservesKeyOrder(t *testing.T) {
	content := json.RawMessage(`{
		"zebra": "last alphabetically",
		"lessonTitle": "Fractions",
		"apple": "first alphabetically"
	}`)

	sections, err := Flatten(content)
	assert.NoError(t, err)
	assert.Len(t, sections, 3)
	assert.Equal(t, "Zebra", sections[0].Heading)
	assert.Equal(t, "Lesson Title", sections[1].Heading)
	assert.Equal(t, "Apple", sections[2].Heading)
}

func TestFlatten_SkipsNullMembers(t *testing.T) {
	content := json.RawMessage(`{"title": "Algebra", "notes": null}`)

	sections, err := Flatten(content)
	assert.NoError(t, err)
	assert.Len(t, sections, 1)
	assert.Equal(t, "Title", sections[0].Heading)
}

func TestFlatten_RejectsNonObject(t *testing.T) {
	_, err := Flatten(json.RawMessage(`["a", "b"]`))
	assert.Error(t, err)
}

func TestFormatValue_StringArrayBecomesNumberedList(t *testing.T) {
	got := FormatValue(json.RawMessage(`["Identify fractions", "Compare fractions"]`))
	assert.Equal(t, "1. Identify fractions\n2. Compare fractions", got)
}

func TestFormatValue_ObjectArrayBecomesKeyValueLines(t *testing.T) {
	got := FormatValue(json.RawMessage(`[
		{"activity": "Warm up", "duration": "10 min"},
		{"activity": "Group work", "duration": "25 min"}
	]`))
	assert.Equal(t, "activity: Warm up, duration: 10 min\nactivity: Group work, duration: 25 min", got)
}

func TestFormatValue_NestedObject(t *testing.T) {
	got := FormatValue(json.RawMessage(`{"totalPoints": 100, "passingScore": 70}`))
	assert.Equal(t, "totalPoints: 100\npassingScore: 70", got)
}

func TestFormatValue_Primitives(t *testing.T) {
	assert.Equal(t, "45 minutes", FormatValue(json.RawMessage(`"45 minutes"`)))
	assert.Equal(t, "42", FormatValue(json.RawMessage(`42`)))
	assert.Equal(t, "true", FormatValue(json.RawMessage(`true`)))
}

func TestPDF_ProducesDocument(t *testing.T) {
	content := json.RawMessage(`{"lessonTitle": "Fractions", "duration": "45 minutes"}`)

	data, err := PDF("Intro to Fractions", "lesson", content)
	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestDOCX_ProducesDocument(t *testing.T) {
	content := json.RawMessage(`{"programTitle": "Algebra I", "overview": "A full year program."}`)

	data, err := DOCX("Algebra I", "program", content)
	assert.NoError(t, err)
	// docx files are zip archives
	assert.Equal(t, "PK", string(data[:2]))
}
