package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest par (produto, quantidade) de uma venda nova.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CreateSaleRequest entrada para registrar uma venda.
// CustomerID é opcional (venda de balcão), obrigatório quando payment_method
// é "credit" (fiado).
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	Items         []SaleLineRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse linha de uma venda.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Price     decimal.Decimal `json:"price"`
}

// SaleResponse saída de uma venda.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Paid          bool               `json:"paid"`
}

// SaleListResponse lista de vendas (mais recentes primeiro).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
