package controller

import (
	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/serverutils"
	"ai-textbook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Get("profile", serverutils.JwtMiddleware, c.Profile)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Profile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.authService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}
