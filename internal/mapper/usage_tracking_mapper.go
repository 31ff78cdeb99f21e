package mapper

import (
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/model"
)

type UsageTrackingMapper struct{}

func NewUsageTrackingMapper() *UsageTrackingMapper {
	return &UsageTrackingMapper{}
}

func (m *UsageTrackingMapper) ToEntity(u *model.UsageTracking) *entity.UsageTracking {
	if u == nil {
		return nil
	}

	return &entity.UsageTracking{
		Id:        u.Id,
		UserId:    u.UserId,
		Action:    u.Action,
		Month:     u.Month,
		Count:     u.Count,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UsageTrackingMapper) ToModel(u *entity.UsageTracking) *model.UsageTracking {
	if u == nil {
		return nil
	}

	return &model.UsageTracking{
		Id:        u.Id,
		UserId:    u.UserId,
		Action:    u.Action,
		Month:     u.Month,
		Count:     u.Count,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
