package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GenerationType string

const (
	GenerationTypeLesson     GenerationType = "lesson"
	GenerationTypeProgram    GenerationType = "program"
	GenerationTypeAssessment GenerationType = "assessment"
)

func (t GenerationType) Valid() bool {
	switch t {
	case GenerationTypeLesson, GenerationTypeProgram, GenerationTypeAssessment:
		return true
	}
	return false
}

type Generation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProjectId uuid.UUID
	Type      GenerationType
	Title     string
	// Schemaless payload dictated by the LLM response. Kept as raw JSON so
	// key order survives storage and rendering.
	Content           json.RawMessage
	SourceDocumentIds []uuid.UUID
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
