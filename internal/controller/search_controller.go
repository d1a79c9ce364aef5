package controller

import (
	"strconv"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	SearchBody(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("", c.Search)
	h.Post("", c.SearchBody)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "0"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	req := dto.SearchRequest{
		Query:     ctx.Query("q", ""),
		ChapterId: ctx.Query("chapter_id", ""),
		Limit:     limit,
		Offset:    offset,
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search content", res))
}

func (c *searchController) SearchBody(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search content", res))
}
