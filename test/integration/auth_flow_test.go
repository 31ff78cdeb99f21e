package integration

import (
	"context"
	"os"
	"testing"

	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/internal/service"
	"ai-curriculum-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestAuthFlow(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	authService := service.NewAuthService(uowFactory)

	ctx := context.Background()
	email := "test-auth-" + uuid.New().String() + "@example.com"
	password := "super-secret-password"

	// Register
	registered, err := authService.Register(ctx, &dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Auth Flow User",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "free", registered.User.SubscriptionTier)

	// Duplicate email rejected
	_, err = authService.Register(ctx, &dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Auth Flow User",
	})
	assert.Error(t, err)

	// Login
	login, err := authService.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
	assert.NoError(t, err)
	assert.NotEmpty(t, login.RefreshToken)

	// Wrong password is a generic failure
	_, err = authService.Login(ctx, &dto.LoginRequest{Email: email, Password: "wrong-password"})
	assert.Error(t, err)

	// Refresh rotates the stored token
	refreshed, err := authService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// Replaying the pre-rotation token must fail
	_, err = authService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.Error(t, err)

	// Logout clears the stored token, so refresh fails afterwards
	assert.NoError(t, authService.Logout(ctx, &dto.LogoutRequest{RefreshToken: refreshed.RefreshToken}))
	_, err = authService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	assert.Error(t, err)
}
