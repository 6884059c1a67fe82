package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseResponse saída de uma despesa (somente leitura).
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// ExpenseListResponse lista de despesas.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}
