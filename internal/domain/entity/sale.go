package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pagamento de uma venda.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentCredit PaymentMethod = "credit" // fiado: aumenta a dívida do cliente
)

// Valid informa se a forma de pagamento pertence à enumeração.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentCredit:
		return true
	}
	return false
}

// SaleItem linha de uma venda. UnitPrice é o preço capturado no momento da
// venda; mudanças posteriores no produto não afetam vendas já registradas.
type SaleItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Price     decimal.Decimal // UnitPrice × Quantity
}

// Sale representa uma venda fechada. Imutável após o registro: não há edição
// nem cancelamento.
type Sale struct {
	ID            string
	Date          time.Time
	CustomerID    string // vazio = venda de balcão
	Items         []SaleItem
	Total         decimal.Decimal // soma dos Price das linhas
	PaymentMethod PaymentMethod
	Paid          bool // falso somente em vendas fiado
}
