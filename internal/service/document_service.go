// FILE: internal/service/document_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/pkg/extract"
	"ai-curriculum-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, file *multipart.FileHeader) (*dto.DocumentDetailResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID, projectId *uuid.UUID) ([]*dto.DocumentResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DocumentDetailResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	uploadDir  string
	logger     logger.ILogger
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory, uploadDir string, logger logger.ILogger) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, file *multipart.FileHeader) (*dto.DocumentDetailResponse, error) {
	mimeType := file.Header.Get("Content-Type")
	if !constant.IsAllowedFileType(mimeType) {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Invalid file type. Only PDF, DOCX, and TXT files are allowed.")
	}
	if file.Size > constant.MaxFileSize {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "File too large (max 10MB)")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Project not found")
	}

	storageName := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), utils.SanitizeFilename(file.Filename))
	storagePath := filepath.Join(s.uploadDir, storageName)
	if err := s.saveFile(file, storagePath); err != nil {
		return nil, err
	}

	// Best effort; an unreadable body still leaves the raw file usable.
	var extractedText *string
	if text := extract.Text(storagePath, mimeType); text != "" {
		extractedText = &text
	}

	document := &entity.Document{
		Id:            uuid.New(),
		UserId:        userId,
		ProjectId:     projectId,
		Filename:      file.Filename,
		FileType:      mimeType,
		FileSize:      file.Size,
		StoragePath:   storagePath,
		ExtractedText: extractedText,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		// Don't leave an orphaned file behind when the row never landed.
		if cleanupErr := extract.DeleteFile(storagePath); cleanupErr != nil {
			s.logger.Warn("document", "failed to clean up upload", map[string]interface{}{
				"path":  storagePath,
				"error": cleanupErr.Error(),
			})
		}
		return nil, err
	}

	return toDocumentDetailResponse(document), nil
}

func (s *documentService) saveFile(file *multipart.FileHeader, dst string) error {
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func (s *documentService) GetAll(ctx context.Context, userId uuid.UUID, projectId *uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if projectId != nil {
		specs = append(specs, specification.ByProjectID{ProjectID: *projectId})
	}

	documents, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(documents))
	for _, document := range documents {
		result = append(result, toDocumentResponse(document))
	}
	return result, nil
}

func (s *documentService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DocumentDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Document not found")
	}

	return toDocumentDetailResponse(document), nil
}

func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return serverutils.NewAppError(fiber.StatusNotFound, "Document not found")
	}

	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := extract.DeleteFile(document.StoragePath); err != nil {
		s.logger.Warn("document", "failed to delete stored file", map[string]interface{}{
			"document_id": document.Id.String(),
			"path":        document.StoragePath,
			"error":       err.Error(),
		})
	}

	return nil
}

func toDocumentResponse(document *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:        document.Id,
		ProjectId: document.ProjectId,
		Filename:  document.Filename,
		FileType:  document.FileType,
		FileSize:  document.FileSize,
		CreatedAt: document.CreatedAt,
	}
}

func toDocumentDetailResponse(document *entity.Document) *dto.DocumentDetailResponse {
	return &dto.DocumentDetailResponse{
		DocumentResponse: *toDocumentResponse(document),
		ExtractedText:    document.ExtractedText,
	}
}
