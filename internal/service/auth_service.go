// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"time"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), constant.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:               uuid.New(),
		Email:            req.Email,
		PasswordHash:     string(hash),
		Name:             req.Name,
		School:           req.School,
		SubscriptionTier: entity.SubscriptionTierFree,
		EmailVerified:    false,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, uow, user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Same response for unknown email and wrong password.
	if user == nil {
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return s.issueSession(ctx, uow, user)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	userId, err := serverutils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	// Rotation: the presented token must match the one stored on the user
	// row, so a replayed token from a previous rotation is rejected.
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != req.RefreshToken {
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	pair, err := serverutils.IssueTokenPair(user.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateRefreshToken(ctx, user.Id, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	userId, err := serverutils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		// Logout is idempotent; an expired or garbage token has nothing
		// to revoke.
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != req.RefreshToken {
		return nil
	}

	return uow.UserRepository().UpdateRefreshToken(ctx, user.Id, nil)
}

func (s *authService) issueSession(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.AuthResponse, error) {
	pair, err := serverutils.IssueTokenPair(user.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateRefreshToken(ctx, user.Id, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: dto.AuthUserResponse{
			Id:               user.Id,
			Email:            user.Email,
			Name:             user.Name,
			School:           user.School,
			SubscriptionTier: string(user.SubscriptionTier),
		},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
