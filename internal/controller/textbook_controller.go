package controller

import (
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITextbookController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowChapter(ctx *fiber.Ctx) error
}

type textbookController struct {
	textbookService service.ITextbookService
}

func NewTextbookController(textbookService service.ITextbookService) ITextbookController {
	return &textbookController{
		textbookService: textbookService,
	}
}

func (c *textbookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/textbook/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get("chapter/:id", c.ShowChapter)
}

func (c *textbookController) List(ctx *fiber.Ctx) error {
	res, err := c.textbookService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list textbooks", res))
}

func (c *textbookController) Show(ctx *fiber.Ctx) error {
	res, err := c.textbookService.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show textbook", res))
}

func (c *textbookController) ShowChapter(ctx *fiber.Ctx) error {
	res, err := c.textbookService.ShowChapter(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chapter", res))
}
