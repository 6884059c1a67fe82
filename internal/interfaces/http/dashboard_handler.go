package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padoca/padoca-api/internal/application/usecase"
)

// DashboardHandler trata a requisição do resumo do console.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumo do console
// @Description  Totais de vendas, despesas, clientes, produtos e dívidas,
// @Description  mais vendas recentes, devedores e produtos com estoque baixo.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
