// FILE: internal/service/generation_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/pkg/llm"
	"ai-curriculum-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Prompts are capped so a stack of large documents cannot blow past the
// model's context window.
const maxSourceTextChars = 12000

type IGenerationService interface {
	Generate(ctx context.Context, userId uuid.UUID, genType entity.GenerationType, req *dto.GenerateRequest) (*dto.GenerationResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID, projectId *uuid.UUID, genType *entity.GenerationType) ([]*dto.GenerationSummaryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.GenerationResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGenerationRequest) (*dto.GenerationResponse, error)
}

type generationService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.LLMProvider
	usageService IUsageService
	logger       logger.ILogger
}

// NewGenerationService wires the generator. A nil llmProvider switches the
// service to mock mode, which serves canned content instead of calling out.
func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	usageService IUsageService,
	logger logger.ILogger,
) IGenerationService {
	return &generationService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		usageService: usageService,
		logger:       logger,
	}
}

func (s *generationService) Generate(ctx context.Context, userId uuid.UUID, genType entity.GenerationType, req *dto.GenerateRequest) (*dto.GenerationResponse, error) {
	if !genType.Valid() {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid generation type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: req.ProjectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Project not found")
	}

	// Unknown or foreign document ids are dropped, not rejected.
	sourceText, sourceIds, err := s.collectSourceText(ctx, uow, userId, req.DocumentIds)
	if err != nil {
		return nil, err
	}

	s.usageService.Track(ctx, userId, constant.UsageActionGeneration)

	// Project metadata fills in config fields the request left blank.
	cfg := req.Config
	if cfg.Subject == "" && project.Subject != nil {
		cfg.Subject = *project.Subject
	}
	if cfg.GradeLevel == "" && project.GradeLevel != nil {
		cfg.GradeLevel = *project.GradeLevel
	}

	content, err := s.generateContent(ctx, genType, req.Title, cfg, sourceText)
	if err != nil {
		return nil, err
	}

	generation := &entity.Generation{
		Id:                uuid.New(),
		UserId:            userId,
		ProjectId:         req.ProjectId,
		Type:              genType,
		Title:             req.Title,
		Content:           content,
		SourceDocumentIds: sourceIds,
		Version:           1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uow.GenerationRepository().Create(ctx, generation); err != nil {
		return nil, err
	}

	return toGenerationResponse(generation), nil
}

func (s *generationService) collectSourceText(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, documentIds []uuid.UUID) (string, []uuid.UUID, error) {
	if len(documentIds) == 0 {
		return "", []uuid.UUID{}, nil
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByIDs{IDs: documentIds},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return "", nil, err
	}

	parts := make([]string, 0, len(documents))
	sourceIds := make([]uuid.UUID, 0, len(documents))
	for _, document := range documents {
		sourceIds = append(sourceIds, document.Id)
		if document.ExtractedText != nil && *document.ExtractedText != "" {
			parts = append(parts, *document.ExtractedText)
		}
	}

	text := utils.Truncate(strings.Join(parts, "\n\n"), maxSourceTextChars)
	return text, sourceIds, nil
}

func (s *generationService) generateContent(ctx context.Context, genType entity.GenerationType, title string, cfg dto.GenerationConfig, sourceText string) (json.RawMessage, error) {
	if s.llmProvider == nil {
		s.logger.Info("generation", "no LLM provider configured, serving mock content", map[string]interface{}{
			"type": string(genType),
		})
		return constant.MockResponse(string(genType)), nil
	}

	prompt := constant.BuildPrompt(string(genType), constant.PromptConfig{
		Title:                  title,
		Subject:                cfg.Subject,
		GradeLevel:             cfg.GradeLevel,
		Duration:               cfg.Duration,
		Objectives:             cfg.Objectives,
		AdditionalInstructions: cfg.AdditionalInstructions,
	}, sourceText)

	raw, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generation", "LLM call failed", map[string]interface{}{
			"type":  string(genType),
			"error": err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to generate content: %s", err.Error()))
	}

	return llm.ParseStructured(raw), nil
}

func (s *generationService) GetAll(ctx context.Context, userId uuid.UUID, projectId *uuid.UUID, genType *entity.GenerationType) ([]*dto.GenerationSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if projectId != nil {
		specs = append(specs, specification.ByProjectID{ProjectID: *projectId})
	}
	if genType != nil {
		specs = append(specs, specification.Filter("type", *genType))
	}

	generations, err := uow.GenerationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GenerationSummaryResponse, 0, len(generations))
	for _, generation := range generations {
		result = append(result, &dto.GenerationSummaryResponse{
			Id:        generation.Id,
			ProjectId: generation.ProjectId,
			Type:      string(generation.Type),
			Title:     generation.Title,
			Version:   generation.Version,
			CreatedAt: generation.CreatedAt,
			UpdatedAt: generation.UpdatedAt,
		})
	}
	return result, nil
}

func (s *generationService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.GenerationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	generation, err := uow.GenerationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Generation not found")
	}

	return toGenerationResponse(generation), nil
}

func (s *generationService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGenerationRequest) (*dto.GenerationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	generation, err := uow.GenerationRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Generation not found")
	}

	if req.Title != nil {
		generation.Title = *req.Title
	}
	if len(req.Content) > 0 && !isJsonNull(req.Content) {
		if !json.Valid(req.Content) {
			return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Content must be a valid JSON object")
		}
		trimmed := bytes.TrimSpace(req.Content)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Content must be a valid JSON object")
		}
		generation.Content = req.Content
	}
	generation.Version++
	generation.UpdatedAt = time.Now()

	if err := uow.GenerationRepository().Update(ctx, generation); err != nil {
		return nil, err
	}

	return toGenerationResponse(generation), nil
}

func isJsonNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func toGenerationResponse(generation *entity.Generation) *dto.GenerationResponse {
	sourceIds := generation.SourceDocumentIds
	if sourceIds == nil {
		sourceIds = []uuid.UUID{}
	}
	return &dto.GenerationResponse{
		Id:                generation.Id,
		ProjectId:         generation.ProjectId,
		Type:              string(generation.Type),
		Title:             generation.Title,
		Content:           generation.Content,
		SourceDocumentIds: sourceIds,
		Version:           generation.Version,
		CreatedAt:         generation.CreatedAt,
		UpdatedAt:         generation.UpdatedAt,
	}
}
