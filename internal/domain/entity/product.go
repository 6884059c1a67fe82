package entity

import "github.com/shopspring/decimal"

// ProductCategory categoria fixa de produto.
type ProductCategory string

const (
	CategoryBread  ProductCategory = "bread"
	CategoryCake   ProductCategory = "cake"
	CategoryPastry ProductCategory = "pastry"
	CategoryDrink  ProductCategory = "drink"
	CategoryOther  ProductCategory = "other"
)

// Valid informa se a categoria pertence à enumeração.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryBread, CategoryCake, CategoryPastry, CategoryDrink, CategoryOther:
		return true
	}
	return false
}

// LowStockThreshold abaixo deste valor o produto aparece como "estoque baixo".
const LowStockThreshold = 10

// Product representa um produto da padaria.
// Stock é decrementado por vendas e incrementado por reposições.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal // preço de venda unitário, sempre positivo
	Category ProductCategory
	Stock    int // nunca negativo
}

// LowStock indica se o estoque está abaixo do limite de alerta.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}
