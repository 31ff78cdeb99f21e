// FILE: internal/dto/document_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	ProjectId uuid.UUID `json:"projectId"`
	Filename  string    `json:"filename"`
	FileType  string    `json:"fileType"`
	FileSize  int64     `json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentDetailResponse includes the extracted text, which list responses
// leave out to keep payloads small.
type DocumentDetailResponse struct {
	DocumentResponse
	ExtractedText *string `json:"extractedText"`
}
