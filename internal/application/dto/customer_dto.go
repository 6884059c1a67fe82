package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para cadastrar um cliente. A dívida inicial é
// sempre zero; dívidas só nascem de vendas fiado.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email"`
}

// UpdateCustomerRequest entrada para editar um cliente (sem tocar na dívida).
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// RecordPaymentRequest entrada para registrar um pagamento de dívida.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email,omitempty"`
	DebtAmount         decimal.Decimal `json:"debt_amount"`
	LastPurchaseDate   time.Time       `json:"last_purchase_date"`
	LastPaymentDate    *time.Time      `json:"last_payment_date,omitempty"`
	NotificationSent   bool            `json:"notification_sent"`
	NotificationSentAt *time.Time      `json:"notification_sent_at,omitempty"`
}

// CustomerListResponse lista de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
