package server

import (
	"log"

	"ai-textbook-be/internal/bootstrap"
	"ai-textbook-be/internal/config"
	"ai-textbook-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB, chapters can carry full text
		ErrorHandler: serverutils.NewErrorHandler(container.SysLogger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "healthy"}))
	})

	c.AuthController.RegisterRoutes(api)
	c.TextbookController.RegisterRoutes(api)
	c.SearchController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.PersonalizationController.RegisterRoutes(api)
	c.ContentController.RegisterRoutes(api)
}
