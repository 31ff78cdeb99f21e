package implementation

import (
	"context"
	"errors"

	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/mapper"
	"ai-curriculum-be/internal/model"
	"ai-curriculum-be/internal/repository/contract"
	"ai-curriculum-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageTrackingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageTrackingMapper
}

func NewUsageTrackingRepository(db *gorm.DB) contract.UsageTrackingRepository {
	return &UsageTrackingRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageTrackingMapper(),
	}
}

func (r *UsageTrackingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageTrackingRepositoryImpl) Increment(ctx context.Context, userId uuid.UUID, action, month string) error {
	row := &model.UsageTracking{
		Id:     uuid.New(),
		UserId: userId,
		Action: action,
		Month:  month,
		Count:  1,
	}
	// Single-statement upsert against the composite unique index so concurrent
	// increments never lose counts.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "action"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("usage_trackings.count + 1"),
		}),
	}).Create(row).Error
}

func (r *UsageTrackingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UsageTracking, error) {
	var m model.UsageTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UsageTrackingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageTracking, error) {
	var models []*model.UsageTracking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UsageTracking, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
