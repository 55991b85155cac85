package serverutils

import (
	"errors"

	"onboarding-survey-be/pkg/fault"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping controllers into the JSON
// envelope. Client faults map to 400/404, everything else to 500. NotFound is
// only a transport-level 404; inside the navigation flow an absent row is a
// Finish signal, handled long before errors reach this layer.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		if fault.IsClientError(err) {
			code := fiber.StatusBadRequest
			if errors.Is(err, fault.ErrNotFound) {
				code = fiber.StatusNotFound
			}
			return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
