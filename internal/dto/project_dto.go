// FILE: internal/dto/project_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Subject     *string  `json:"subject"`
	GradeLevel  *string  `json:"gradeLevel"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest carries a partial update; nil fields are untouched.
type UpdateProjectRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Subject     *string   `json:"subject"`
	GradeLevel  *string   `json:"gradeLevel"`
	Tags        *[]string `json:"tags"`
	Archived    *bool     `json:"archived"`
}

// ProjectDetailResponse embeds the project's documents and generations, the
// shape the detail endpoint returns.
type ProjectDetailResponse struct {
	ProjectResponse
	Documents   []*DocumentResponse          `json:"documents"`
	Generations []*GenerationSummaryResponse `json:"generations"`
}

type ProjectResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Subject     *string   `json:"subject"`
	GradeLevel  *string   `json:"gradeLevel"`
	Tags        []string  `json:"tags"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
