package constant

import (
	"fmt"
	"strings"
)

// PromptConfig carries the tunable fields rendered into a generation prompt.
type PromptConfig struct {
	Title                  string
	Subject                string
	GradeLevel             string
	Duration               string
	Objectives             []string
	AdditionalInstructions string
}

const lessonPromptTemplate = `
You are an expert curriculum designer. Create a detailed lesson plan based on the following information.

Source Material:
%s

Configuration:
- Title: %s
- Subject: %s
- Grade Level: %s
- Duration: %s
%s
Please create a comprehensive lesson plan with the following sections:
1. **Lesson Title**
2. **Learning Objectives** (3-5 specific, measurable objectives)
3. **Materials Needed**
4. **Lesson Introduction** (hook/engagement activity)
5. **Main Instruction** (step-by-step teaching activities)
6. **Guided Practice** (activities with teacher support)
7. **Independent Practice** (student-led activities)
8. **Assessment** (how to evaluate learning)
9. **Closure** (summary and preview of next lesson)
10. **Differentiation** (accommodations for diverse learners)

Format the response as a structured JSON object with these sections as keys.
`

const programPromptTemplate = `
You are an expert curriculum designer. Create a program outline based on the following information.

Source Material:
%s

Configuration:
- Title: %s
- Subject: %s
- Grade Level: %s
%s
Please create a comprehensive program outline with:
1. **Program Title**
2. **Overview** (program description and goals)
3. **Duration** (total program length)
4. **Unit Breakdown** (list of units with descriptions)
5. **Learning Outcomes** (what students will achieve)
6. **Assessment Strategy** (how progress will be measured)
7. **Resources Required**
8. **Weekly Schedule** (high-level timeline)

Format the response as a structured JSON object with these sections as keys.
`

const assessmentPromptTemplate = `
You are an expert curriculum designer. Create an assessment based on the following information.

Source Material:
%s

Configuration:
- Title: %s
- Subject: %s
- Grade Level: %s
%s
Please create a comprehensive assessment with:
1. **Assessment Title**
2. **Instructions** (for students)
3. **Multiple Choice Questions** (5-10 questions with answer key)
4. **Short Answer Questions** (3-5 questions with rubric)
5. **Extended Response Questions** (1-2 questions with rubric)
6. **Answer Key** (all correct answers)
7. **Grading Rubric** (point allocation)

Format the response as a structured JSON object with these sections as keys.
`

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// BuildPrompt renders the prompt template for a generation type. Unknown types
// fall back to the lesson template.
func BuildPrompt(genType string, cfg PromptConfig, sourceText string) string {
	subject := orDefault(cfg.Subject, "Not specified")
	gradeLevel := orDefault(cfg.GradeLevel, "Not specified")

	var extra strings.Builder
	switch genType {
	case "lesson":
		if len(cfg.Objectives) > 0 {
			fmt.Fprintf(&extra, "- Learning Objectives: %s\n", strings.Join(cfg.Objectives, ", "))
		}
		if cfg.AdditionalInstructions != "" {
			fmt.Fprintf(&extra, "- Additional Instructions: %s\n", cfg.AdditionalInstructions)
		}
		return fmt.Sprintf(lessonPromptTemplate,
			sourceText, cfg.Title, subject, gradeLevel,
			orDefault(cfg.Duration, "45 minutes"), extra.String())
	case "program":
		if cfg.AdditionalInstructions != "" {
			fmt.Fprintf(&extra, "- Additional Instructions: %s\n", cfg.AdditionalInstructions)
		}
		return fmt.Sprintf(programPromptTemplate,
			sourceText, cfg.Title, subject, gradeLevel, extra.String())
	case "assessment":
		if len(cfg.Objectives) > 0 {
			fmt.Fprintf(&extra, "- Topics to Assess: %s\n", strings.Join(cfg.Objectives, ", "))
		}
		if cfg.AdditionalInstructions != "" {
			fmt.Fprintf(&extra, "- Additional Instructions: %s\n", cfg.AdditionalInstructions)
		}
		return fmt.Sprintf(assessmentPromptTemplate,
			sourceText, cfg.Title, subject, gradeLevel, extra.String())
	default:
		if cfg.AdditionalInstructions != "" {
			fmt.Fprintf(&extra, "- Additional Instructions: %s\n", cfg.AdditionalInstructions)
		}
		return fmt.Sprintf(lessonPromptTemplate,
			sourceText, cfg.Title, subject, gradeLevel,
			orDefault(cfg.Duration, "45 minutes"), extra.String())
	}
}
