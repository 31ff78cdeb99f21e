package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ProjectId   uuid.UUID
	Filename    string
	FileType    string
	FileSize    int64
	StoragePath string
	// Nil when extraction is unsupported (DOCX) or failed.
	ExtractedText *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
