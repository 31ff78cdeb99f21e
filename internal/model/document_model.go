package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename      string    `gorm:"type:varchar(255);not null"`
	FileType      string    `gorm:"type:varchar(100);not null"`
	FileSize      int64     `gorm:"not null"`
	StoragePath   string    `gorm:"type:text;not null"`
	ExtractedText *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
