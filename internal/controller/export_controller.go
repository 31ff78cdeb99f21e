// FILE: internal/controller/export_controller.go
package controller

import (
	"fmt"

	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Export(format string) fiber.Handler
	Download(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/exports")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/pdf", c.Export(service.ExportFormatPdf))
	h.Post("/docx", c.Export(service.ExportFormatDocx))
	h.Get("/:id/download", c.Download)
}

func (c *exportController) Export(format string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := currentUserId(ctx)
		if err != nil {
			return err
		}

		var req dto.ExportRequest
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}

		payload, filename, contentType, err := c.service.Export(ctx.Context(), userId, req.GenerationId, format)
		if err != nil {
			return err
		}

		return sendAttachment(ctx, payload, filename, contentType)
	}
}

func (c *exportController) Download(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	// Anything other than pdf falls back to docx.
	format := ctx.Query("format")

	payload, filename, contentType, err := c.service.Export(ctx.Context(), userId, id, format)
	if err != nil {
		return err
	}

	return sendAttachment(ctx, payload, filename, contentType)
}

func sendAttachment(ctx *fiber.Ctx, payload []byte, filename, contentType string) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(payload)
}
