package controller

import (
	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/dto"
	"ai-siteplanner-be/internal/pkg/serverutils"
	"ai-siteplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlannerController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
	Regenerate(ctx *fiber.Ctx) error
	StartOver(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Load(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	SeoChecklist(ctx *fiber.Ctx) error
	EnhanceSchemaSet(ctx *fiber.Ctx) error
	EnhanceSuggestions(ctx *fiber.Ctx) error
	EnhanceChecklist(ctx *fiber.Ctx) error
	EnhanceSerpPreview(ctx *fiber.Ctx) error
	EnhanceSeoStrategy(ctx *fiber.Ctx) error
}

type plannerController struct {
	service service.IPlannerService
}

func NewPlannerController(service service.IPlannerService) IPlannerController {
	return &plannerController{service: service}
}

func (c *plannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan/v1")
	h.Post("/generate", c.Generate)
	h.Get("/state", c.State)
	h.Post("/regenerate", c.Regenerate)
	h.Post("/start-over", c.StartOver)
	h.Post("/reset", c.Reset)
	h.Post("/save", c.Save)
	h.Post("/load", c.Load)
	h.Get("/export", c.Export)
	h.Get("/seo-checklist", c.SeoChecklist)
	h.Post("/enhancements/schema", c.EnhanceSchemaSet)
	h.Post("/enhancements/suggestions", c.EnhanceSuggestions)
	h.Post("/enhancements/checklist", c.EnhanceChecklist)
	h.Post("/enhancements/serp-preview", c.EnhanceSerpPreview)
	h.Post("/enhancements/seo-strategy", c.EnhanceSeoStrategy)
}

func (c *plannerController) Generate(ctx *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GeneratePlan(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate site plan", res))
}

func (c *plannerController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get plan state", c.service.Snapshot()))
}

func (c *plannerController) Regenerate(ctx *fiber.Ctx) error {
	res, err := c.service.RegeneratePlan(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success regenerate site plan", res))
}

func (c *plannerController) StartOver(ctx *fiber.Ctx) error {
	res := c.service.StartOver(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success start over", res))
}

func (c *plannerController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.ResetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset all plan data", res))
}

func (c *plannerController) Save(ctx *fiber.Ctx) error {
	if err := c.service.SavePlan(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Plan saved successfully", nil))
}

func (c *plannerController) Load(ctx *fiber.Ctx) error {
	res, err := c.service.LoadPlan(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Loaded saved plan", res))
}

func (c *plannerController) Export(ctx *fiber.Ctx) error {
	data, err := c.service.ExportPlan()
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="site-plan.json"`)
	return ctx.Send(data)
}

func (c *plannerController) SeoChecklist(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get SEO checklist", constant.SeoChecklist))
}

func (c *plannerController) EnhanceSchemaSet(ctx *fiber.Ctx) error {
	res, err := c.service.EnhanceSchemaSet(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate LD+JSON schema", res))
}

func (c *plannerController) EnhanceSuggestions(ctx *fiber.Ctx) error {
	res, err := c.service.EnhanceSuggestions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate site suggestions", res))
}

func (c *plannerController) EnhanceChecklist(ctx *fiber.Ctx) error {
	var req dto.ChecklistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.EnhanceChecklist(ctx.Context(), constant.ChecklistKind(req.Kind))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate checklist", res))
}

func (c *plannerController) EnhanceSerpPreview(ctx *fiber.Ctx) error {
	res, err := c.service.EnhanceSerpPreview(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate SERP preview", res))
}

func (c *plannerController) EnhanceSeoStrategy(ctx *fiber.Ctx) error {
	res, err := c.service.EnhanceSeoStrategy(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate SEO strategy insights", res))
}
