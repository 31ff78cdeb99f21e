package specification

import "gorm.io/gorm"

type ByAction struct {
	Action string
}

func (s ByAction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action = ?", s.Action)
}

type ByMonth struct {
	Month string
}

func (s ByMonth) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("month = ?", s.Month)
}
