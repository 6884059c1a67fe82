package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padoca/padoca-api/internal/application/usecase"
)

// ExpenseHandler trata as requisições HTTP de despesas.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler constrói o handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar despesas
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
