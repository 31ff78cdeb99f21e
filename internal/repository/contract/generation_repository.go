package contract

import (
	"context"

	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/repository/specification"
)

type GenerationRepository interface {
	Create(ctx context.Context, generation *entity.Generation) error
	Update(ctx context.Context, generation *entity.Generation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Generation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Generation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
