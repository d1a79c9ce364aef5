package serverutils

import (
	"errors"

	"ai-textbook-be/internal/pkg/logger"
	"ai-textbook-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps domain errors to HTTP statuses. Unrecognized
// errors become 500 with a generic message so internals never leak.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var notFoundErr *rag.NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, notFoundErr.Error()))
		}

		var validationErr *rag.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		}

		var embeddingErr *rag.EmbeddingError
		if errors.As(err, &embeddingErr) {
			log.Error("http", "embedding provider failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, "Embedding provider unavailable"))
		}

		var processingErr *rag.ProcessingError
		if errors.As(err, &processingErr) {
			log.Error("http", "content processing failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Content processing failed"))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
