// Package seed fornece o conjunto de dados inicial da aplicação. Como não há
// persistência, todo início de processo parte exatamente destes registros.
package seed

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("seed: valor decimal inválido: " + s)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func ptr(t time.Time) *time.Time { return &t }

// State devolve o estado inicial completo: clientes, produtos, vendas e despesas.
func State() memory.State {
	return memory.State{
		Customers: []entity.Customer{
			{
				ID:               "1",
				Name:             "Maria Silva",
				Phone:            "(11) 98765-4321",
				DebtAmount:       dec("45.50"),
				LastPurchaseDate: day(2023, time.September, 15),
				LastPaymentDate:  ptr(day(2023, time.August, 30)),
			},
			{
				ID:               "2",
				Name:             "João Oliveira",
				Phone:            "(11) 91234-5678",
				Email:            "joao@email.com",
				DebtAmount:       dec("127.75"),
				LastPurchaseDate: day(2023, time.September, 10),
				NotificationSent: true,
			},
			{
				ID:               "3",
				Name:             "Ana Pereira",
				Phone:            "(11) 99876-5432",
				DebtAmount:       decimal.Zero,
				LastPurchaseDate: day(2023, time.September, 16),
				LastPaymentDate:  ptr(day(2023, time.September, 16)),
			},
			{
				ID:               "4",
				Name:             "Carlos Santos",
				Phone:            "(11) 95555-9999",
				DebtAmount:       dec("87.20"),
				LastPurchaseDate: day(2023, time.September, 5),
				LastPaymentDate:  ptr(day(2023, time.August, 20)),
			},
		},
		Products: []entity.Product{
			{ID: "1", Name: "Pão Francês", Price: dec("0.75"), Category: entity.CategoryBread, Stock: 150},
			{ID: "2", Name: "Bolo de Chocolate", Price: dec("35.00"), Category: entity.CategoryCake, Stock: 8},
			{ID: "3", Name: "Croissant", Price: dec("4.50"), Category: entity.CategoryPastry, Stock: 25},
			{ID: "4", Name: "Café Pequeno", Price: dec("3.00"), Category: entity.CategoryDrink, Stock: 100},
		},
		Sales: []entity.Sale{
			{
				ID:   "1",
				Date: time.Date(2023, time.September, 16, 8, 30, 0, 0, time.Local),
				Items: []entity.SaleItem{
					{ProductID: "1", Quantity: 10, UnitPrice: dec("0.75"), Price: dec("7.50")},
					{ProductID: "4", Quantity: 2, UnitPrice: dec("3.00"), Price: dec("6.00")},
				},
				Total:         dec("13.50"),
				PaymentMethod: entity.PaymentCash,
				Paid:          true,
			},
			{
				ID:         "2",
				Date:       time.Date(2023, time.September, 16, 10, 15, 0, 0, time.Local),
				CustomerID: "2",
				Items: []entity.SaleItem{
					{ProductID: "2", Quantity: 1, UnitPrice: dec("35.00"), Price: dec("35.00")},
					{ProductID: "3", Quantity: 4, UnitPrice: dec("4.50"), Price: dec("18.00")},
				},
				Total:         dec("53.00"),
				PaymentMethod: entity.PaymentCredit,
				Paid:          false,
			},
			{
				ID:         "3",
				Date:       time.Date(2023, time.September, 15, 16, 45, 0, 0, time.Local),
				CustomerID: "1",
				Items: []entity.SaleItem{
					{ProductID: "1", Quantity: 5, UnitPrice: dec("0.75"), Price: dec("3.75")},
					{ProductID: "3", Quantity: 2, UnitPrice: dec("4.50"), Price: dec("9.00")},
				},
				Total:         dec("12.75"),
				PaymentMethod: entity.PaymentCredit,
				Paid:          false,
			},
		},
		Expenses: []entity.Expense{
			{ID: "1", Date: day(2023, time.September, 15), Description: "Compra de farinha", Amount: dec("250.00"), Category: entity.ExpenseIngredients},
			{ID: "2", Date: day(2023, time.September, 10), Description: "Conta de luz", Amount: dec("380.50"), Category: entity.ExpenseUtilities},
			{ID: "3", Date: day(2023, time.September, 5), Description: "Salário auxiliar", Amount: dec("1500.00"), Category: entity.ExpenseSalary},
		},
	}
}
