package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/application/notification"
	"github.com/padoca/padoca-api/internal/application/usecase"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
	infrapdf "github.com/padoca/padoca-api/internal/infrastructure/pdf"
	"github.com/padoca/padoca-api/internal/infrastructure/seed"
	"github.com/padoca/padoca-api/internal/infrastructure/sms"
	apphttp "github.com/padoca/padoca-api/internal/interfaces/http"
	"github.com/padoca/padoca-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp constrói a aplicação completa sobre o estado de demonstração,
// com o transporte de SMS simulado sem atraso.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.New(seed.State())
	log := logger.New(logger.Config{Env: "development", Level: "disabled"})

	dispatcher := notification.NewDispatcher(store, sms.NewSimulatedTransport(0), notification.Config{
		Cooldown:      7 * 24 * time.Hour,
		Timeout:       time.Second,
		MaxConcurrent: 4,
	}, log, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC:  usecase.NewCustomerUseCase(store, nil),
		StatementUC: usecase.NewStatementUseCase(store, infrapdf.NewMarotoStatementGenerator()),
		ProductUC:   usecase.NewProductUseCase(store),
		SaleUC:      usecase.NewSaleUseCase(store, log, nil),
		ExpenseUC:   usecase.NewExpenseUseCase(store),
		DashboardUC: usecase.NewDashboardUseCase(store),
		Dispatcher:  dispatcher,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestListarClientes(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.CustomerListResponse](t, raw)
	assert.Equal(t, 4, out.Total)
}

func TestListarSomenteDevedoresOrdenados(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/?debtors=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.CustomerListResponse](t, raw)
	require.Equal(t, 3, out.Total)
	// Da maior dívida para a menor: João, Carlos, Maria.
	assert.Equal(t, "João Oliveira", out.Items[0].Name)
	assert.Equal(t, "Carlos Santos", out.Items[1].Name)
	assert.Equal(t, "Maria Silva", out.Items[2].Name)
}

func TestObterClienteInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestRegistrarPagamentoQuitaDivida(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/customers/1/payments", fiber.Map{
		"amount": "45.50",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.CustomerResponse](t, raw)
	assert.True(t, out.DebtAmount.IsZero())
	assert.NotNil(t, out.LastPaymentDate)
}

func TestPagamentoMaiorQueDividaRejeitado(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/customers/1/payments", fiber.Map{
		"amount": "100.00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestExtratoPDF(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/customers/2/statement", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	// Todo PDF começa com o cabeçalho mágico "%PDF".
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVendaAVista(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/sales/", fiber.Map{
		"payment_method": "cash",
		"items": []fiber.Map{
			{"product_id": "1", "quantity": 10},
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.SaleResponse](t, raw)
	assert.Equal(t, "7.5", out.Total.String())
	assert.True(t, out.Paid)

	// O estoque do pão baixa de 150 para 140.
	_, raw = doJSON(t, app, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, 140, decode[dto.ProductResponse](t, raw).Stock)
}

func TestVendaFiadoSemClienteRejeitada(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/sales/", fiber.Map{
		"payment_method": "credit",
		"items": []fiber.Map{
			{"product_id": "1", "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestVendaFiadoSomaNaDivida(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/sales/", fiber.Map{
		"customer_id":    "3",
		"payment_method": "credit",
		"items": []fiber.Map{
			{"product_id": "2", "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	_, raw := doJSON(t, app, http.MethodGet, "/api/customers/3", nil)
	assert.Equal(t, "35", decode[dto.CustomerResponse](t, raw).DebtAmount.String())
}

func TestVendaSemEstoqueRejeitada(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/sales/", fiber.Map{
		"payment_method": "cash",
		"items": []fiber.Map{
			{"product_id": "2", "quantity": 9}, // só há 8 bolos
		},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, raw).Code)

	// Nada foi baixado.
	_, raw = doJSON(t, app, http.MethodGet, "/api/products/2", nil)
	assert.Equal(t, 8, decode[dto.ProductResponse](t, raw).Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestReporEstoqueComIncrementoPadrao(t *testing.T) {
	app := buildTestApp(t)

	// Corpo vazio usa o incremento padrão de 10 unidades.
	req := httptest.NewRequest(http.MethodPost, "/api/products/2/restock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProductResponse](t, raw)
	assert.Equal(t, 18, out.Stock)
	assert.False(t, out.LowStock)
}

func TestReporEstoqueComDelta(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/products/3/restock", fiber.Map{
		"delta": 5,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 30, decode[dto.ProductResponse](t, raw).Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard e despesas
// ──────────────────────────────────────────────────────────────────────────────

func TestResumoDoConsole(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardSummaryDTO](t, raw)
	assert.Equal(t, 4, out.TotalCustomers)
	assert.Equal(t, 4, out.TotalProducts)
	assert.Equal(t, "260.45", out.TotalDebt.StringFixed(2))
	assert.Len(t, out.CustomersWithDebt, 3)
	// Só o bolo (8 unidades) está abaixo do limite de estoque.
	require.Len(t, out.LowStockProducts, 1)
	assert.Equal(t, "Bolo de Chocolate", out.LowStockProducts[0].Name)
}

func TestListarDespesas(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/expenses/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.ExpenseListResponse](t, raw).Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviarAlertaParaDevedor(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/alerts/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.AlertOutcomeResponse](t, raw)
	assert.Equal(t, "sent", out.Status)
	assert.Equal(t, "1", out.CustomerID)

	// O cliente fica marcado como notificado.
	_, raw = doJSON(t, app, http.MethodGet, "/api/customers/1", nil)
	assert.True(t, decode[dto.CustomerResponse](t, raw).NotificationSent)
}

func TestAlertaParaClienteSemDivida(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/alerts/3", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestAlertaDentroDaCarenciaRejeitado(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/alerts/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/alerts/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DISPATCH_COOLDOWN", decode[dto.ErrorResponse](t, raw).Code)
}

func TestEnviarTodosELimparMarcacoes(t *testing.T) {
	app := buildTestApp(t)

	// João já está marcado como notificado no estado inicial; o primeiro
	// lote alcança só Maria e Carlos.
	resp, raw := doJSON(t, app, http.MethodPost, "/api/alerts/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.AlertBatchResponse](t, raw)
	assert.Equal(t, 2, out.Sent)
	assert.Equal(t, 0, out.Failed)

	// Todos marcados: um segundo lote não tem a quem enviar.
	resp, raw = doJSON(t, app, http.MethodPost, "/api/alerts/", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "NOTHING_TO_NOTIFY", decode[dto.ErrorResponse](t, raw).Code)

	// O reset libera os envios de novo.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/alerts/reset", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/alerts/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.AlertBatchResponse](t, raw).Sent)
}
