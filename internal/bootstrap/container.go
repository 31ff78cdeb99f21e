package bootstrap

import (
	"log"

	"ai-curriculum-be/internal/config"
	"ai-curriculum-be/internal/controller"
	"ai-curriculum-be/internal/pkg/logger"
	"ai-curriculum-be/internal/repository/memory"
	"ai-curriculum-be/internal/repository/unitofwork"
	"ai-curriculum-be/internal/service"
	"ai-curriculum-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	ProjectController    controller.IProjectController
	DocumentController   controller.IDocumentController
	GenerationController controller.IGenerationController
	ExportController     controller.IExportController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider (nil means mock mode)
	llmProvider := factory.NewLLMProvider(cfg.Keys.Claude)
	if llmProvider == nil {
		log.Println("[INFO] CLAUDE_API_KEY not set, generation runs in mock mode")
	} else {
		log.Println("[INFO] Using LLM Provider: CLAUDE")
	}

	// In-memory cache for rendered exports
	exportCache := memory.NewExportCache()

	// 3. Services
	usageService := service.NewUsageService(uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	projectService := service.NewProjectService(uowFactory, sysLogger)
	documentService := service.NewDocumentService(uowFactory, cfg.Upload.Dir, sysLogger)
	generationService := service.NewGenerationService(uowFactory, llmProvider, usageService, sysLogger)
	exportService := service.NewExportService(
		uowFactory,
		exportCache,
		usageService,
		cfg.Upload.ExportDir,
		cfg.App.Environment,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService, usageService),
		ProjectController:    controller.NewProjectController(projectService),
		DocumentController:   controller.NewDocumentController(documentService),
		GenerationController: controller.NewGenerationController(generationService),
		ExportController:     controller.NewExportController(exportService),
	}
}
