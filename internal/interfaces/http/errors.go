package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/domain"
)

// respondError mapeia os erros de domínio para status HTTP e o corpo padrão
// dto.ErrorResponse. Erros desconhecidos viram 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrCreditRequiresCustomer),
		errors.Is(err, domain.ErrPaymentExceedsDebt),
		errors.Is(err, domain.ErrNoDebt):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDispatchPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DISPATCH_PENDING", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDispatchCooldown):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DISPATCH_COOLDOWN", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNothingToNotify):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "NOTHING_TO_NOTIFY", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
