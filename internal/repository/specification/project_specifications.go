package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotArchived excludes soft-archived projects from default listings.
type NotArchived struct{}

func (s NotArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("archived = ?", false)
}

// ByProjectID scopes documents/generations to one project.
type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}
