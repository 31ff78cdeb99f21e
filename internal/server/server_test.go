package server

import (
	"testing"
	"time"

	"ai-curriculum-be/internal/bootstrap"
	"ai-curriculum-be/internal/config"
	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/controller"

	"github.com/stretchr/testify/assert"
)

func TestNew_BodyLimitExceedsUploadCap(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{
			CorsAllowedOrigins: "http://localhost:5173",
			RateLimitMax:       100,
			RateLimitWindowSec: int(15 * time.Minute / time.Second),
		},
		Upload: config.UploadConfig{Dir: t.TempDir()},
	}

	// Route registration only needs the controllers, not live services.
	container := &bootstrap.Container{
		AuthController:       controller.NewAuthController(nil),
		UserController:       controller.NewUserController(nil, nil),
		ProjectController:    controller.NewProjectController(nil),
		DocumentController:   controller.NewDocumentController(nil),
		GenerationController: controller.NewGenerationController(nil),
		ExportController:     controller.NewExportController(nil),
	}

	srv := New(cfg, container)

	// The upload size check returns a 400, the fiber limit would cut the
	// request off with a 413 first if it were not higher.
	assert.Greater(t, srv.GetApp().Config().BodyLimit, constant.MaxFileSize)
}
