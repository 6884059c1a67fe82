package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/application/notification"
)

// AlertHandler trata os envios de alerta de cobrança por SMS.
type AlertHandler struct {
	dispatcher *notification.Dispatcher
}

// NewAlertHandler constrói o handler.
func NewAlertHandler(dispatcher *notification.Dispatcher) *AlertHandler {
	return &AlertHandler{dispatcher: dispatcher}
}

// Dispatch godoc
// @Summary      Enviar alerta de cobrança para um cliente
// @Description  Rejeita clientes sem dívida, dentro do período de carência ou
// @Description  com envio em andamento.
// @Tags         alerts
// @Produce      json
// @Param        customerId  path  string  true  "ID do cliente"
// @Success      200  {object}  dto.AlertOutcomeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{customerId} [post]
func (h *AlertHandler) Dispatch(c *fiber.Ctx) error {
	id := c.Params("customerId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "customerId é obrigatório"})
	}
	out, err := h.dispatcher.Dispatch(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlertOutcome(out))
}

// DispatchAll godoc
// @Summary      Enviar alertas para todos os devedores elegíveis
// @Description  Cada envio tem desfecho independente; a falha de um número não
// @Description  derruba o lote.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertBatchResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) DispatchAll(c *fiber.Ctx) error {
	outcomes, err := h.dispatcher.DispatchAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.AlertBatchResponse{Outcomes: make([]dto.AlertOutcomeResponse, 0, len(outcomes))}
	for _, out := range outcomes {
		resp.Outcomes = append(resp.Outcomes, toAlertOutcome(out))
		if out.Status == notification.StatusSent {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary      Limpar marcações de envio
// @Description  Zera o registro de último alerta de todos os clientes,
// @Description  liberando novos envios imediatamente.
// @Tags         alerts
// @Success      204  "sem conteúdo"
// @Router       /api/alerts/reset [post]
func (h *AlertHandler) Reset(c *fiber.Ctx) error {
	h.dispatcher.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

func toAlertOutcome(out notification.Outcome) dto.AlertOutcomeResponse {
	return dto.AlertOutcomeResponse{
		ID:           out.ID,
		CustomerID:   out.CustomerID,
		CustomerName: out.CustomerName,
		Status:       string(out.Status),
		Reason:       out.Reason,
	}
}
