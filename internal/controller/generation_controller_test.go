// FILE: internal/controller/generation_controller_test.go
package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type generationServiceStub struct {
	gotProjectId *uuid.UUID
	gotType      *entity.GenerationType
}

func (s *generationServiceStub) Generate(ctx context.Context, userId uuid.UUID, genType entity.GenerationType, req *dto.GenerateRequest) (*dto.GenerationResponse, error) {
	return nil, nil
}

func (s *generationServiceStub) GetAll(ctx context.Context, userId uuid.UUID, projectId *uuid.UUID, genType *entity.GenerationType) ([]*dto.GenerationSummaryResponse, error) {
	s.gotProjectId = projectId
	s.gotType = genType
	return []*dto.GenerationSummaryResponse{}, nil
}

func (s *generationServiceStub) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.GenerationResponse, error) {
	return nil, nil
}

func (s *generationServiceStub) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGenerationRequest) (*dto.GenerationResponse, error) {
	return nil, nil
}

func TestGenerationGetAll_TypeQueryFilter(t *testing.T) {
	stub := &generationServiceStub{}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewGenerationController(stub).RegisterRoutes(app.Group("/api"))

	tokens, err := serverutils.IssueTokenPair(uuid.New())
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/generations?type=lesson", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	if assert.NotNil(t, stub.gotType) {
		assert.Equal(t, entity.GenerationTypeLesson, *stub.gotType)
	}
	assert.Nil(t, stub.gotProjectId)
}

func TestGenerationGetAll_RejectsUnknownType(t *testing.T) {
	stub := &generationServiceStub{}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewGenerationController(stub).RegisterRoutes(app.Group("/api"))

	tokens, err := serverutils.IssueTokenPair(uuid.New())
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/generations?type=quiz", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, stub.gotType)
}
