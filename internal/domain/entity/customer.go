package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa um cliente da padaria.
// DebtAmount é o saldo devedor acumulado de vendas fiado; nunca fica negativo.
// NotificationSentAt registra o último alerta de cobrança entregue com sucesso.
type Customer struct {
	ID                 string
	Name               string
	Phone              string
	Email              string // opcional
	DebtAmount         decimal.Decimal
	LastPurchaseDate   time.Time
	LastPaymentDate    *time.Time
	NotificationSent   bool
	NotificationSentAt *time.Time
}

// HasDebt indica se o cliente possui saldo devedor.
func (c Customer) HasDebt() bool {
	return c.DebtAmount.GreaterThan(decimal.Zero)
}
