// FILE: internal/dto/export_dto.go
package dto

import (
	"github.com/google/uuid"
)

type ExportRequest struct {
	GenerationId uuid.UUID `json:"generationId" validate:"required"`
}
