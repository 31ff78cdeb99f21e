package integration

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.GenerationRepository())
	assert.NotNil(t, uow.UsageTrackingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Project Document Generation Round Trip", func(t *testing.T) {
		user := &entity.User{
			Id:               uuid.New(),
			Email:            "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash:     "not-a-real-hash",
			Name:             "Integration Test User",
			SubscriptionTier: entity.SubscriptionTierFree,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		description := "integration fixture"
		project := &entity.Project{
			Id:          uuid.New(),
			UserId:      user.Id,
			Title:       "Integration Project",
			Description: &description,
			Tags:        []string{"integration"},
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		assert.NoError(t, uow.ProjectRepository().Create(ctx, project))

		found, err := uow.ProjectRepository().FindOne(ctx,
			specification.ByID{ID: project.Id},
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, project.Title, found.Title)
			assert.Equal(t, []string{"integration"}, found.Tags)
		}

		// Foreign owner must read as absent
		foreign, err := uow.ProjectRepository().FindOne(ctx,
			specification.ByID{ID: project.Id},
			specification.UserOwnedBy{UserID: uuid.New()},
		)
		assert.NoError(t, err)
		assert.Nil(t, foreign)

		generation := &entity.Generation{
			Id:                uuid.New(),
			UserId:            user.Id,
			ProjectId:         project.Id,
			Type:              entity.GenerationTypeLesson,
			Title:             "Integration Lesson",
			Content:           []byte(`{"lessonTitle": "Integration Lesson"}`),
			SourceDocumentIds: []uuid.UUID{},
			Version:           1,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		}
		assert.NoError(t, uow.GenerationRepository().Create(ctx, generation))

		generations, err := uow.GenerationRepository().FindAll(ctx,
			specification.ByProjectID{ProjectID: project.Id},
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.Len(t, generations, 1)

		lessons, err := uow.GenerationRepository().FindAll(ctx,
			specification.ByProjectID{ProjectID: project.Id},
			specification.Filter("type", entity.GenerationTypeLesson),
		)
		assert.NoError(t, err)
		assert.Len(t, lessons, 1)

		programs, err := uow.GenerationRepository().FindAll(ctx,
			specification.ByProjectID{ProjectID: project.Id},
			specification.Filter("type", entity.GenerationTypeProgram),
		)
		assert.NoError(t, err)
		assert.Len(t, programs, 0)

		// Content must come back with keys in the stored order, the export
		// renderers depend on it.
		ordered := &entity.Generation{
			Id:                uuid.New(),
			UserId:            user.Id,
			ProjectId:         project.Id,
			Type:              entity.GenerationTypeLesson,
			Title:             "Key Order Fixture",
			Content:           []byte(`{"zebra": 1, "lessonTitle": "x", "apple": 2}`),
			SourceDocumentIds: []uuid.UUID{},
			Version:           1,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		}
		assert.NoError(t, uow.GenerationRepository().Create(ctx, ordered))

		reread, err := uow.GenerationRepository().FindOne(ctx,
			specification.ByID{ID: ordered.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, reread) {
			content := string(reread.Content)
			zebra := strings.Index(content, "zebra")
			title := strings.Index(content, "lessonTitle")
			apple := strings.Index(content, "apple")
			assert.True(t, zebra >= 0 && title > zebra && apple > title,
				"stored content reordered keys: %s", content)
		}

		// Cleanup
		assert.NoError(t, uow.ProjectRepository().Delete(ctx, project.Id))
	})

	t.Run("Usage Increment Upsert", func(t *testing.T) {
		user := &entity.User{
			Id:               uuid.New(),
			Email:            "test-usage-" + uuid.New().String() + "@example.com",
			PasswordHash:     "not-a-real-hash",
			Name:             "Usage Test User",
			SubscriptionTier: entity.SubscriptionTierFree,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		month := time.Now().Format("2006-01")
		assert.NoError(t, uow.UsageTrackingRepository().Increment(ctx, user.Id, "generation", month))
		assert.NoError(t, uow.UsageTrackingRepository().Increment(ctx, user.Id, "generation", month))

		row, err := uow.UsageTrackingRepository().FindOne(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.ByAction{Action: "generation"},
			specification.ByMonth{Month: month},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, row) {
			assert.Equal(t, 2, row.Count)
		}
	})
}
