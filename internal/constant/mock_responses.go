package constant

import "encoding/json"

// Canned generation payloads used when no Claude API key is configured.
// Kept as raw JSON so the stored content preserves key order end to end.

const mockLessonResponse = `{
  "lessonTitle": "Sample Lesson Plan",
  "learningObjectives": [
    "Students will understand the key concepts",
    "Students will apply knowledge through practice",
    "Students will demonstrate mastery through assessment"
  ],
  "materialsNeeded": ["Textbook", "Whiteboard", "Worksheets", "Digital resources"],
  "lessonIntroduction": "Begin with an engaging hook to capture student attention...",
  "mainInstruction": "Provide direct instruction covering the main concepts...",
  "guidedPractice": "Work through examples together as a class...",
  "independentPractice": "Students work independently on practice problems...",
  "assessment": "Formative assessment through observation and exit tickets...",
  "closure": "Review key points and preview next lesson...",
  "differentiation": "Provide scaffolding for struggling learners and extensions for advanced students..."
}`

const mockProgramResponse = `{
  "programTitle": "Sample Program Outline",
  "overview": "This program covers fundamental concepts and builds toward mastery...",
  "duration": "12 weeks",
  "unitBreakdown": [
    {"name": "Unit 1: Introduction", "description": "Foundation concepts", "weeks": 2},
    {"name": "Unit 2: Core Concepts", "description": "Main content", "weeks": 4},
    {"name": "Unit 3: Application", "description": "Practical application", "weeks": 4},
    {"name": "Unit 4: Review", "description": "Review and assessment", "weeks": 2}
  ],
  "learningOutcomes": ["Understand core concepts", "Apply knowledge", "Demonstrate mastery"],
  "assessmentStrategy": "Combination of formative and summative assessments...",
  "resourcesRequired": ["Textbooks", "Digital tools", "Supplementary materials"],
  "weeklySchedule": "Detailed weekly breakdown..."
}`

const mockAssessmentResponse = `{
  "assessmentTitle": "Sample Assessment",
  "instructions": "Read each question carefully. Show all work for full credit.",
  "multipleChoiceQuestions": [
    {"question": "Sample question 1?", "options": ["A", "B", "C", "D"], "answer": "A"},
    {"question": "Sample question 2?", "options": ["A", "B", "C", "D"], "answer": "B"}
  ],
  "shortAnswerQuestions": [
    {"question": "Explain the concept...", "rubric": "2 points for complete answer"}
  ],
  "extendedResponseQuestions": [
    {"question": "Analyze and discuss...", "rubric": "10 points total"}
  ],
  "answerKey": "See above for individual answers",
  "gradingRubric": "Total: 100 points"
}`

func MockResponse(genType string) json.RawMessage {
	switch genType {
	case "program":
		return json.RawMessage(mockProgramResponse)
	case "assessment":
		return json.RawMessage(mockAssessmentResponse)
	default:
		return json.RawMessage(mockLessonResponse)
	}
}
