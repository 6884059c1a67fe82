package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// Espelha os cartões do console: vendas, despesas, clientes, produtos e o
// total a receber, mais as listas de apoio (vendas recentes, devedores e
// produtos com estoque baixo).
type DashboardSummaryDTO struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	TotalDebt      decimal.Decimal `json:"total_debt"` // total a receber

	RecentSales       []SaleResponse     `json:"recent_sales"`
	CustomersWithDebt []CustomerResponse `json:"customers_with_debt"` // ordenados por dívida decrescente
	LowStockProducts  []ProductResponse  `json:"low_stock_products"`
}
