package serverutils

import (
	"errors"

	"ai-siteplanner-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors to JSON responses.
// Precondition failures become 4xx; generation failures stay 502 so the
// client can distinguish provider trouble from its own bad input.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		var genErr *apperrors.GenerationError
		if errors.As(err, &genErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": genErr.Error()})
		}

		switch {
		case errors.Is(err, apperrors.ErrAPIKeyMissing):
			return ctx.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, apperrors.ErrEmptyDescription),
			errors.Is(err, apperrors.ErrNoSitemap),
			errors.Is(err, apperrors.ErrWrongStage):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, apperrors.ErrNoSavedPlan):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
