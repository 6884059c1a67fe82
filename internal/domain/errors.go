package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInsufficientStock      = errors.New("estoque insuficiente")
	ErrCreditRequiresCustomer = errors.New("venda fiado exige um cliente")
	ErrPaymentExceedsDebt     = errors.New("pagamento excede a dívida atual")
	ErrNoDebt                 = errors.New("cliente não possui dívida pendente")
	ErrDispatchPending        = errors.New("já existe um envio pendente para este cliente")
	ErrDispatchCooldown       = errors.New("alerta já enviado dentro do período de espera")
	ErrNothingToNotify        = errors.New("nenhum cliente pendente de notificação")
)

// DispatchError indica que o transporte de notificação não conseguiu entregar
// a mensagem. Um DispatchError em um cliente não interrompe os demais envios.
type DispatchError struct {
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("falha no envio do alerta: %s", e.Reason)
}
