package controller

import (
	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	CreateTextbook(ctx *fiber.Ctx) error
	UpsertChapter(ctx *fiber.Ctx) error
	DeleteChapter(ctx *fiber.Ctx) error
	ReindexChapter(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
}

func NewContentController(contentService service.IContentService) IContentController {
	return &contentController{
		contentService: contentService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("textbook", c.CreateTextbook)
	h.Put("chapter", c.UpsertChapter)
	h.Delete("chapter/:id", c.DeleteChapter)
	h.Post("chapter/:id/reindex", c.ReindexChapter)
}

func (c *contentController) CreateTextbook(ctx *fiber.Ctx) error {
	var req dto.CreateTextbookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.CreateTextbook(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create textbook", res))
}

func (c *contentController) UpsertChapter(ctx *fiber.Ctx) error {
	var req dto.UpsertChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpsertChapter(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upsert chapter", res))
}

func (c *contentController) DeleteChapter(ctx *fiber.Ctx) error {
	if err := c.contentService.DeleteChapter(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chapter", nil))
}

func (c *contentController) ReindexChapter(ctx *fiber.Ctx) error {
	res, err := c.contentService.ReindexChapter(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reindex chapter", res))
}
