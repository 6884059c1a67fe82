package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category" validate:"required"`
	Stock    int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para editar um produto (estoque só muda por
// vendas e reposições).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

// RestockRequest entrada para repor estoque. Delta omitido ou zero usa o
// incremento padrão de 10 unidades.
type RestockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	LowStock bool            `json:"low_stock"`
}

// ProductListResponse lista de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
