package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Generation struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProjectId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type              string         `gorm:"type:varchar(50);not null"`
	Title             string         `gorm:"type:varchar(255);not null"`
	// json, not jsonb: jsonb normalizes objects and would reorder keys,
	// content must come back byte-for-byte as stored.
	Content           datatypes.JSON `gorm:"type:json;not null"`
	SourceDocumentIds datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Version           int            `gorm:"not null;default:1"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (Generation) TableName() string {
	return "generations"
}
