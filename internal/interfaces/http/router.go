package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/padoca/padoca-api/internal/application/notification"
	"github.com/padoca/padoca-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	StatementUC *usecase.StatementUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	DashboardUC *usecase.DashboardUseCase
	Dispatcher  *notification.Dispatcher
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/payments", customerHandler.RecordPayment)
	customers.Get("/:id/statement", customerHandler.Statement)

	// Produtos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/restock", productHandler.Restock)

	// Vendas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Despesas
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Alertas de cobrança
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Dispatcher)
	alerts.Post("/", alertHandler.DispatchAll)
	alerts.Post("/reset", alertHandler.Reset)
	alerts.Post("/:customerId", alertHandler.Dispatch)
}
