// FILE: internal/service/usage_service.go
package service

import (
	"context"
	"time"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUsageService interface {
	// Track records one unit of usage for the current month. Recording is
	// best effort and never fails the calling operation.
	Track(ctx context.Context, userId uuid.UUID, action string)
	Summary(ctx context.Context, userId uuid.UUID) (*dto.UsageSummaryResponse, error)
}

type usageService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUsageService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IUsageService {
	return &usageService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// MonthKey formats a point in time as the "YYYY-MM" bucket usage rows key on.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func (s *usageService) Track(ctx context.Context, userId uuid.UUID, action string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	month := MonthKey(time.Now())
	if err := uow.UsageTrackingRepository().Increment(ctx, userId, action, month); err != nil {
		s.logger.Warn("usage", "failed to record usage", map[string]interface{}{
			"user_id": userId.String(),
			"action":  action,
			"month":   month,
			"error":   err.Error(),
		})
	}
}

func (s *usageService) Summary(ctx context.Context, userId uuid.UUID) (*dto.UsageSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "User not found")
	}

	rows, err := uow.UsageTrackingRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByMonth{Month: MonthKey(time.Now())},
	)
	if err != nil {
		return nil, err
	}

	tier := string(user.SubscriptionTier)
	limits, ok := constant.SubscriptionTiers[tier]
	if !ok {
		limits = constant.SubscriptionTiers["free"]
	}

	usage := make([]dto.UsageEntryResponse, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, dto.UsageEntryResponse{
			Action: row.Action,
			Month:  row.Month,
			Count:  row.Count,
		})
	}

	return &dto.UsageSummaryResponse{
		SubscriptionTier: tier,
		Limits: dto.TierLimitsResponse{
			GenerationsPerMonth: limits.GenerationsPerMonth,
			MaxDocuments:        limits.MaxDocuments,
			MaxProjects:         limits.MaxProjects,
		},
		Usage: usage,
	}, nil
}
