package contract

import (
	"context"

	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UsageTrackingRepository interface {
	// Increment atomically bumps the (userId, action, month) counter,
	// creating the row with count 1 when absent.
	Increment(ctx context.Context, userId uuid.UUID, action, month string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UsageTracking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageTracking, error)
}
