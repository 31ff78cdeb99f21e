package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageTracking is a per-user, per-action counter for one calendar month
// ("YYYY-MM"). Rows are upserted: increment when present, create at 1 otherwise.
type UsageTracking struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Action    string
	Month     string
	Count     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
