// FILE: internal/controller/generation_controller.go
package controller

import (
	"ai-curriculum-be/internal/dto"
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/pkg/serverutils"
	"ai-curriculum-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(genType entity.GenerationType) fiber.Handler
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type generationController struct {
	service service.IGenerationService
}

func NewGenerationController(service service.IGenerationService) IGenerationController {
	return &generationController{service: service}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generations")
	h.Use(serverutils.JwtMiddleware)
	// One handler per type, same pipeline underneath.
	h.Post("/lesson", c.Generate(entity.GenerationTypeLesson))
	h.Post("/program", c.Generate(entity.GenerationTypeProgram))
	h.Post("/assessment", c.Generate(entity.GenerationTypeAssessment))
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.Update)
}

func (c *generationController) Generate(genType entity.GenerationType) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := currentUserId(ctx)
		if err != nil {
			return err
		}

		var req dto.GenerateRequest
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}

		res, err := c.service.Generate(ctx.Context(), userId, genType, &req)
		if err != nil {
			return err
		}

		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Generation created", res))
	}
}

func (c *generationController) GetAll(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var projectId *uuid.UUID
	if q := ctx.Query("projectId"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return serverutils.NewAppError(fiber.StatusBadRequest, "projectId must be a valid id")
		}
		projectId = &id
	}

	var genType *entity.GenerationType
	if q := ctx.Query("type"); q != "" {
		t := entity.GenerationType(q)
		if !t.Valid() {
			return serverutils.NewAppError(fiber.StatusBadRequest, "type must be one of: lesson, program, assessment")
		}
		genType = &t
	}

	res, err := c.service.GetAll(ctx.Context(), userId, projectId, genType)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get generations", res))
}

func (c *generationController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get generation", res))
}

func (c *generationController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateGenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Generation updated", res))
}
