package model

import (
	"time"

	"github.com/google/uuid"
)

type UsageTracking struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_user_action_month"`
	Action    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_usage_user_action_month"`
	Month     string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_usage_user_action_month"`
	Count     int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UsageTracking) TableName() string {
	return "usage_trackings"
}
