// FILE: internal/dto/generation_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GenerationConfig struct {
	Subject                string   `json:"subject"`
	GradeLevel             string   `json:"gradeLevel"`
	Duration               string   `json:"duration"`
	Objectives             []string `json:"objectives"`
	AdditionalInstructions string   `json:"additionalInstructions"`
}

type GenerateRequest struct {
	ProjectId   uuid.UUID        `json:"projectId" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	DocumentIds []uuid.UUID      `json:"documentIds"`
	Config      GenerationConfig `json:"config"`
}

// UpdateGenerationRequest carries a partial update. A non-nil Content
// replaces the stored payload wholesale and bumps the version.
type UpdateGenerationRequest struct {
	Id      uuid.UUID       `json:"-"`
	Title   *string         `json:"title" validate:"omitempty,min=1"`
	Content json.RawMessage `json:"content"`
}

type GenerationResponse struct {
	Id                uuid.UUID       `json:"id"`
	ProjectId         uuid.UUID       `json:"projectId"`
	Type              string          `json:"type"`
	Title             string          `json:"title"`
	Content           json.RawMessage `json:"content"`
	SourceDocumentIds []uuid.UUID     `json:"sourceDocumentIds"`
	Version           int             `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// GenerationSummaryResponse is the list shape; content is omitted.
type GenerationSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	ProjectId uuid.UUID `json:"projectId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
