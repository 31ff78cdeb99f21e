// FILE: internal/service/project_service.go
package service

import (
	"context"
	"time"

	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID, includeArchived bool) ([]*dto.ProjectResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ProjectDetailResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	project := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Tags:        tags,
		Archived:    false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) GetAll(ctx context.Context, userId uuid.UUID, includeArchived bool) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if !includeArchived {
		specs = append(specs, specification.NotArchived{})
	}

	projects, err := uow.ProjectRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, toProjectResponse(project))
	}
	return result, nil
}

func (s *projectService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ProjectDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Project not found")
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	generations, err := uow.GenerationRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	detail := &dto.ProjectDetailResponse{
		ProjectResponse: *toProjectResponse(project),
		Documents:       make([]*dto.DocumentResponse, 0, len(documents)),
		Generations:     make([]*dto.GenerationSummaryResponse, 0, len(generations)),
	}
	for _, document := range documents {
		detail.Documents = append(detail.Documents, toDocumentResponse(document))
	}
	for _, generation := range generations {
		detail.Generations = append(detail.Generations, &dto.GenerationSummaryResponse{
			Id:        generation.Id,
			ProjectId: generation.ProjectId,
			Type:      string(generation.Type),
			Title:     generation.Title,
			Version:   generation.Version,
			CreatedAt: generation.CreatedAt,
			UpdatedAt: generation.UpdatedAt,
		})
	}
	return detail, nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Project not found")
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Subject != nil {
		project.Subject = req.Subject
	}
	if req.GradeLevel != nil {
		project.GradeLevel = req.GradeLevel
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	if req.Archived != nil {
		project.Archived = *req.Archived
	}
	project.UpdatedAt = time.Now()

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if project == nil {
		return serverutils.NewAppError(fiber.StatusNotFound, "Project not found")
	}

	// Collect stored files before the cascade removes the rows.
	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: id},
	)
	if err != nil {
		return err
	}

	if err := uow.ProjectRepository().Delete(ctx, id); err != nil {
		return err
	}

	for _, document := range documents {
		if err := extract.DeleteFile(document.StoragePath); err != nil {
			s.logger.Warn("project", "failed to delete stored file", map[string]interface{}{
				"document_id": document.Id.String(),
				"path":        document.StoragePath,
				"error":       err.Error(),
			})
		}
	}

	return nil
}

func toProjectResponse(project *entity.Project) *dto.ProjectResponse {
	tags := project.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.ProjectResponse{
		Id:          project.Id,
		Title:       project.Title,
		Description: project.Description,
		Subject:     project.Subject,
		GradeLevel:  project.GradeLevel,
		Tags:        tags,
		Archived:    project.Archived,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
