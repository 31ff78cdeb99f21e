package constant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Lesson(t *testing.T) {
	prompt := BuildPrompt("lesson", PromptConfig{
		Title:      "Intro to Fractions",
		Subject:    "Math",
		GradeLevel: "4",
		Duration:   "45 minutes",
		Objectives: []string{"Identify fractions", "Compare fractions"},
	}, "Fractions represent parts of a whole.")

	assert.Contains(t, prompt, "Fractions represent parts of a whole.")
	assert.Contains(t, prompt, "Intro to Fractions")
	assert.Contains(t, prompt, "Math")
	assert.Contains(t, prompt, "45 minutes")
	assert.Contains(t, prompt, "Identify fractions, Compare fractions")
	assert.Contains(t, prompt, "lesson plan")
}

func TestBuildPrompt_DefaultsMissingFields(t *testing.T) {
	prompt := BuildPrompt("program", PromptConfig{Title: "Algebra I"}, "source")
	assert.Contains(t, prompt, "Not specified")
}

func TestMockResponse_ValidJsonPerType(t *testing.T) {
	for _, genType := range []string{"lesson", "program", "assessment"} {
		t.Run(genType, func(t *testing.T) {
			raw := MockResponse(genType)
			assert.True(t, json.Valid(raw))

			var payload map[string]interface{}
			assert.NoError(t, json.Unmarshal(raw, &payload))
			assert.NotEmpty(t, payload)
		})
	}
}

func TestMockResponse_KeySets(t *testing.T) {
	var lesson map[string]interface{}
	assert.NoError(t, json.Unmarshal(MockResponse("lesson"), &lesson))
	assert.Contains(t, lesson, "lessonTitle")
	assert.Contains(t, lesson, "learningObjectives")

	var program map[string]interface{}
	assert.NoError(t, json.Unmarshal(MockResponse("program"), &program))
	assert.Contains(t, program, "programTitle")

	var assessment map[string]interface{}
	assert.NoError(t, json.Unmarshal(MockResponse("assessment"), &assessment))
	assert.Contains(t, assessment, "assessmentTitle")
}
