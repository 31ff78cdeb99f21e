// FILE: internal/service/export_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/repository/memory"
	"ai-curriculum-be/internal/repository/specification"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/pkg/render"
	"ai-curriculum-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ExportFormatPdf  = "pdf"
	ExportFormatDocx = "docx"
)

type IExportService interface {
	// Export renders a generation and returns the payload plus the filename
	// and content type to serve it with. Callers pass a normalized format,
	// anything other than "pdf" means "docx".
	Export(ctx context.Context, userId uuid.UUID, generationId uuid.UUID, format string) ([]byte, string, string, error)
}

type exportService struct {
	uowFactory   unitofwork.RepositoryFactory
	cache        *memory.ExportCache
	usageService IUsageService
	exportDir    string
	environment  string
	logger       logger.ILogger
}

func NewExportService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.ExportCache,
	usageService IUsageService,
	exportDir string,
	environment string,
	logger logger.ILogger,
) IExportService {
	return &exportService{
		uowFactory:   uowFactory,
		cache:        cache,
		usageService: usageService,
		exportDir:    exportDir,
		environment:  environment,
		logger:       logger,
	}
}

func (s *exportService) Export(ctx context.Context, userId uuid.UUID, generationId uuid.UUID, format string) ([]byte, string, string, error) {
	if format != ExportFormatPdf {
		format = ExportFormatDocx
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	generation, err := uow.GenerationRepository().FindOne(ctx,
		specification.ByID{ID: generationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, "", "", err
	}
	if generation == nil {
		return nil, "", "", serverutils.NewAppError(fiber.StatusNotFound, "Generation not found")
	}

	payload, found := s.cache.Get(generation.Id, format, generation.Version)
	if !found {
		payload, err = s.renderPayload(generation, format)
		if err != nil {
			return nil, "", "", err
		}
		s.cache.Save(generation.Id, format, generation.Version, payload)
	}

	s.usageService.Track(ctx, userId, constant.UsageActionExport)

	filename := fmt.Sprintf("%s.%s", utils.SanitizeFilename(generation.Title), format)

	// In development a copy lands on disk so rendered output is easy to
	// eyeball.
	if s.environment == "development" {
		if err := s.writeDevCopy(filename, payload); err != nil {
			s.logger.Warn("export", "failed to write dev export copy", map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
		}
	}

	return payload, filename, exportContentType(format), nil
}

func (s *exportService) renderPayload(generation *entity.Generation, format string) ([]byte, error) {
	var payload []byte
	var err error
	switch format {
	case ExportFormatPdf:
		payload, err = render.PDF(generation.Title, string(generation.Type), generation.Content)
	default:
		payload, err = render.DOCX(generation.Title, string(generation.Type), generation.Content)
	}
	if err != nil {
		s.logger.Error("export", "failed to render document", map[string]interface{}{
			"generation_id": generation.Id.String(),
			"format":        format,
			"error":         err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Failed to export document")
	}
	return payload, nil
}

func (s *exportService) writeDevCopy(filename string, payload []byte) error {
	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.exportDir, filename), payload, 0644)
}

func exportContentType(format string) string {
	if format == ExportFormatPdf {
		return constant.MimePdf
	}
	return constant.MimeDocx
}
