package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description *string        `gorm:"type:text"`
	Subject     *string        `gorm:"type:varchar(255)"`
	GradeLevel  *string        `gorm:"type:varchar(100)"`
	Tags        datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Archived    bool           `gorm:"not null;default:false;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
