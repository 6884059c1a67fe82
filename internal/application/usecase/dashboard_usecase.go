package usecase

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/domain/ledger"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
)

const dashboardRecentSales = 5 // vendas exibidas no widget "Vendas Recentes"

// DashboardUseCase monta o resumo do console: totais de vendas, despesas e
// dívidas, mais as listas de apoio (vendas recentes, devedores, estoque baixo).
//
// Tudo é computado sobre snapshots do store; nenhuma consulta externa.
type DashboardUseCase struct {
	store *memory.Store
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(store *memory.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary monta o DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	customers := uc.store.Customers()
	products := uc.store.Products()
	sales := uc.store.Sales()
	expenses := uc.store.Expenses()

	totalSales := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.Total)
	}
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	// Devedores ordenados da maior dívida para a menor.
	var debtors []dto.CustomerResponse
	for _, c := range customers {
		if c.HasDebt() {
			debtors = append(debtors, *toCustomerResponse(c))
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].DebtAmount.GreaterThan(debtors[j].DebtAmount)
	})

	var lowStock []dto.ProductResponse
	for _, p := range products {
		if p.LowStock() {
			lowStock = append(lowStock, *toProductResponse(p))
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	if len(sales) > dashboardRecentSales {
		sales = sales[:dashboardRecentSales]
	}
	recent := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		recent = append(recent, *toSaleResponse(s))
	}

	return &dto.DashboardSummaryDTO{
		TotalSales:        totalSales,
		TotalExpenses:     totalExpenses,
		TotalCustomers:    len(customers),
		TotalProducts:     len(products),
		TotalDebt:         ledger.DebtSummary(customers),
		RecentSales:       recent,
		CustomersWithDebt: debtors,
		LowStockProducts:  lowStock,
	}
}
