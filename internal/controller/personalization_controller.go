package controller

import (
	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPersonalizationController interface {
	RegisterRoutes(r fiber.Router)
	CreateBookmark(ctx *fiber.Ctx) error
	ListBookmarks(ctx *fiber.Ctx) error
	DeleteBookmark(ctx *fiber.Ctx) error
	UpdateProgress(ctx *fiber.Ctx) error
	ListProgress(ctx *fiber.Ctx) error
	SetChapterPreferences(ctx *fiber.Ctx) error
	GetChapterPreferences(ctx *fiber.Ctx) error
	LearningPath(ctx *fiber.Ctx) error
	AdaptContent(ctx *fiber.Ctx) error
	TranslateChapter(ctx *fiber.Ctx) error
}

type personalizationController struct {
	personalizationService service.IPersonalizationService
	translationService     service.ITranslationService
}

func NewPersonalizationController(
	personalizationService service.IPersonalizationService,
	translationService service.ITranslationService,
) IPersonalizationController {
	return &personalizationController{
		personalizationService: personalizationService,
		translationService:     translationService,
	}
}

func (c *personalizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/me/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("bookmark", c.CreateBookmark)
	h.Get("bookmark", c.ListBookmarks)
	h.Delete("bookmark/:id", c.DeleteBookmark)
	h.Put("progress", c.UpdateProgress)
	h.Get("progress", c.ListProgress)
	h.Post("chapter-preferences/:chapterId", c.SetChapterPreferences)
	h.Get("chapter-preferences/:chapterId", c.GetChapterPreferences)
	h.Get("learning-path", c.LearningPath)
	h.Post("adapt-content", c.AdaptContent)
	h.Post("translate-chapter", c.TranslateChapter)
}

func (c *personalizationController) CreateBookmark(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.personalizationService.CreateBookmark(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create bookmark", res))
}

func (c *personalizationController) ListBookmarks(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.personalizationService.ListBookmarks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list bookmarks", res))
}

func (c *personalizationController) DeleteBookmark(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.personalizationService.DeleteBookmark(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete bookmark", nil))
}

func (c *personalizationController) SetChapterPreferences(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChapterPreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.personalizationService.SetChapterPreferences(ctx.Context(), userId, ctx.Params("chapterId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set chapter preferences", res))
}

func (c *personalizationController) GetChapterPreferences(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.personalizationService.GetChapterPreferences(ctx.Context(), userId, ctx.Params("chapterId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chapter preferences", res))
}

func (c *personalizationController) LearningPath(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.personalizationService.LearningPath(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get learning path", res))
}

func (c *personalizationController) AdaptContent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AdaptContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.personalizationService.AdaptContent(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get content adaptation", res))
}

func (c *personalizationController) TranslateChapter(ctx *fiber.Ctx) error {
	var req dto.TranslateChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.translationService.TranslateChapter(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success translate chapter", res))
}

func (c *personalizationController) UpdateProgress(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.personalizationService.UpdateProgress(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update progress", res))
}

func (c *personalizationController) ListProgress(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.personalizationService.ListProgress(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list progress", res))
}
