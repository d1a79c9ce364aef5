package controller

import (
	"strconv"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("ask", c.Ask)
	h.Get("history", c.History)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	res, err := c.chatService.History(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat history", res))
}
