package unitofwork

import (
	"context"

	"ai-curriculum-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	DocumentRepository() contract.DocumentRepository
	GenerationRepository() contract.GenerationRepository
	UsageTrackingRepository() contract.UsageTrackingRepository
}
