package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtureCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", Name: "Maria Silva", Phone: "(11) 98765-4321", DebtAmount: dec("45.50")},
		{ID: "2", Name: "João Oliveira", Phone: "(11) 91234-5678", DebtAmount: dec("127.75")},
		{ID: "3", Name: "Ana Pereira", Phone: "(11) 99876-5432", DebtAmount: decimal.Zero},
	}
}

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Pão Francês", Price: dec("0.75"), Category: entity.CategoryBread, Stock: 150},
		{ID: "2", Name: "Bolo de Chocolate", Price: dec("35.00"), Category: entity.CategoryCake, Stock: 8},
		{ID: "3", Name: "Croissant", Price: dec("4.50"), Category: entity.CategoryPastry, Stock: 25},
	}
}

var testNow = time.Date(2023, 9, 16, 10, 15, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// ComposeSale
// ──────────────────────────────────────────────────────────────────────────────

// Venda à vista: total = soma das linhas, Paid = true, dívida intacta, estoque baixado.
func TestComposeSale_DinheiroNaoGeraDivida(t *testing.T) {
	customers := fixtureCustomers()
	products := fixtureProducts()

	sale, updProducts, updCustomers, err := ledger.ComposeSale(customers, products, ledger.SaleDraft{
		PaymentMethod: entity.PaymentCash,
		Lines:         []ledger.SaleLine{{ProductID: "1", Quantity: 10}},
	}, testNow)
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(dec("7.50")), "total deve ser 0.75 × 10 = 7.50")
	assert.True(t, sale.Paid, "venda em dinheiro nasce paga")
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].UnitPrice.Equal(dec("0.75")), "preço unitário capturado no momento da venda")
	assert.True(t, sale.Items[0].Price.Equal(dec("7.50")))

	assert.Equal(t, 140, updProducts[0].Stock, "estoque deve baixar por unidade vendida")
	for i := range updCustomers {
		assert.True(t, updCustomers[i].DebtAmount.Equal(customers[i].DebtAmount),
			"venda à vista não altera dívida de nenhum cliente")
	}
}

// Venda fiado: dívida do cliente aumenta exatamente pelo total.
func TestComposeSale_FiadoAumentaDividaDoCliente(t *testing.T) {
	customers := fixtureCustomers()
	products := fixtureProducts()

	sale, _, updCustomers, err := ledger.ComposeSale(customers, products, ledger.SaleDraft{
		CustomerID:    "2",
		PaymentMethod: entity.PaymentCredit,
		Lines: []ledger.SaleLine{
			{ProductID: "2", Quantity: 1},
			{ProductID: "3", Quantity: 4},
		},
	}, testNow)
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(dec("53.00")), "35.00 + 4×4.50 = 53.00")
	assert.False(t, sale.Paid, "fiado nasce em aberto")
	assert.True(t, updCustomers[1].DebtAmount.Equal(dec("180.75")),
		"dívida deve crescer exatamente pelo total: 127.75 + 53.00")
	assert.Equal(t, testNow, updCustomers[1].LastPurchaseDate)
}

// Fiado sem cliente é rejeitado antes de qualquer mutação.
func TestComposeSale_FiadoSemClienteRejeitado(t *testing.T) {
	customers := fixtureCustomers()
	products := fixtureProducts()

	_, updProducts, updCustomers, err := ledger.ComposeSale(customers, products, ledger.SaleDraft{
		PaymentMethod: entity.PaymentCredit,
		Lines:         []ledger.SaleLine{{ProductID: "1", Quantity: 1}},
	}, testNow)

	assert.ErrorIs(t, err, domain.ErrCreditRequiresCustomer)
	assert.Nil(t, updProducts)
	assert.Nil(t, updCustomers)
	assert.Equal(t, 150, products[0].Stock, "entrada não pode ser modificada")
}

func TestComposeSale_ValidacoesDeRascunho(t *testing.T) {
	cases := []struct {
		name  string
		draft ledger.SaleDraft
		want  error
	}{
		{
			name:  "sem linhas",
			draft: ledger.SaleDraft{PaymentMethod: entity.PaymentCash},
			want:  domain.ErrInvalidInput,
		},
		{
			name: "quantidade zero",
			draft: ledger.SaleDraft{
				PaymentMethod: entity.PaymentCash,
				Lines:         []ledger.SaleLine{{ProductID: "1", Quantity: 0}},
			},
			want: domain.ErrInvalidInput,
		},
		{
			name: "forma de pagamento desconhecida",
			draft: ledger.SaleDraft{
				PaymentMethod: "pix",
				Lines:         []ledger.SaleLine{{ProductID: "1", Quantity: 1}},
			},
			want: domain.ErrInvalidInput,
		},
		{
			name: "produto inexistente",
			draft: ledger.SaleDraft{
				PaymentMethod: entity.PaymentCash,
				Lines:         []ledger.SaleLine{{ProductID: "99", Quantity: 1}},
			},
			want: domain.ErrNotFound,
		},
		{
			name: "cliente inexistente",
			draft: ledger.SaleDraft{
				CustomerID:    "99",
				PaymentMethod: entity.PaymentCredit,
				Lines:         []ledger.SaleLine{{ProductID: "1", Quantity: 1}},
			},
			want: domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := ledger.ComposeSale(fixtureCustomers(), fixtureProducts(), tc.draft, testNow)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Estoque insuficiente em qualquer linha derruba a venda inteira (tudo-ou-nada).
func TestComposeSale_EstoqueInsuficienteDerrubaVendaInteira(t *testing.T) {
	products := fixtureProducts()

	_, updProducts, _, err := ledger.ComposeSale(fixtureCustomers(), products, ledger.SaleDraft{
		PaymentMethod: entity.PaymentCash,
		Lines: []ledger.SaleLine{
			{ProductID: "1", Quantity: 5},
			{ProductID: "2", Quantity: 9}, // só há 8 bolos
		},
	}, testNow)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, updProducts)
	assert.Equal(t, 150, products[0].Stock, "nenhuma linha pode ter sido aplicada")
}

// Linhas repetidas do mesmo produto são fundidas, e o estoque é conferido
// sobre a quantidade somada.
func TestComposeSale_LinhasDoMesmoProdutoSaoFundidas(t *testing.T) {
	sale, updProducts, _, err := ledger.ComposeSale(fixtureCustomers(), fixtureProducts(), ledger.SaleDraft{
		PaymentMethod: entity.PaymentCard,
		Lines: []ledger.SaleLine{
			{ProductID: "3", Quantity: 2},
			{ProductID: "1", Quantity: 5},
			{ProductID: "3", Quantity: 3},
		},
	}, testNow)
	require.NoError(t, err)

	require.Len(t, sale.Items, 2, "duas linhas de croissant devem virar uma")
	assert.Equal(t, "3", sale.Items[0].ProductID, "ordem da primeira ocorrência preservada")
	assert.Equal(t, 5, sale.Items[0].Quantity)
	assert.True(t, sale.Items[0].Price.Equal(dec("22.50")))
	assert.Equal(t, 20, updProducts[2].Stock)

	_, _, _, err = ledger.ComposeSale(fixtureCustomers(), fixtureProducts(), ledger.SaleDraft{
		PaymentMethod: entity.PaymentCash,
		Lines: []ledger.SaleLine{
			{ProductID: "2", Quantity: 5},
			{ProductID: "2", Quantity: 5}, // 10 no total, só há 8
		},
	}, testNow)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Propriedade: total == soma dos preços das linhas e cada linha == unitário × quantidade.
func TestComposeSale_TotalEhSomaDasLinhas(t *testing.T) {
	sale, _, _, err := ledger.ComposeSale(fixtureCustomers(), fixtureProducts(), ledger.SaleDraft{
		PaymentMethod: entity.PaymentCash,
		Lines: []ledger.SaleLine{
			{ProductID: "1", Quantity: 10},
			{ProductID: "2", Quantity: 1},
			{ProductID: "3", Quantity: 4},
		},
	}, testNow)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, item := range sale.Items {
		assert.True(t, item.Price.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
		sum = sum.Add(item.Price)
	}
	assert.True(t, sale.Total.Equal(sum))
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyPayment
// ──────────────────────────────────────────────────────────────────────────────

// Cenário do caderno: dívida de 45.50 paga integralmente zera o saldo.
func TestApplyPayment_PagamentoIntegralZeraDivida(t *testing.T) {
	updated, err := ledger.ApplyPayment(fixtureCustomers(), "1", dec("45.50"), testNow)
	require.NoError(t, err)

	assert.True(t, updated[0].DebtAmount.IsZero(), "dívida deve ficar exatamente em 0.00")
	require.NotNil(t, updated[0].LastPaymentDate)
	assert.Equal(t, testNow, *updated[0].LastPaymentDate)
}

func TestApplyPayment_PagamentoParcial(t *testing.T) {
	updated, err := ledger.ApplyPayment(fixtureCustomers(), "2", dec("27.75"), testNow)
	require.NoError(t, err)
	assert.True(t, updated[1].DebtAmount.Equal(dec("100.00")))
}

// Pagamento acima da dívida é rejeitado em vez de truncado silenciosamente.
func TestApplyPayment_PagamentoAcimaDaDividaRejeitado(t *testing.T) {
	customers := fixtureCustomers()
	updated, err := ledger.ApplyPayment(customers, "1", dec("45.51"), testNow)

	assert.ErrorIs(t, err, domain.ErrPaymentExceedsDebt)
	assert.Nil(t, updated)
	assert.True(t, customers[0].DebtAmount.Equal(dec("45.50")), "entrada intacta")
}

func TestApplyPayment_ValorNaoPositivoRejeitado(t *testing.T) {
	for _, amount := range []string{"0", "-10.00"} {
		_, err := ledger.ApplyPayment(fixtureCustomers(), "1", dec(amount), testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor %s deve ser rejeitado", amount)
	}
}

func TestApplyPayment_ClienteInexistente(t *testing.T) {
	_, err := ledger.ApplyPayment(fixtureCustomers(), "99", dec("10.00"), testNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restock
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_IncrementaExatamenteDelta(t *testing.T) {
	products := fixtureProducts()
	updated, err := ledger.Restock(products, "2", 10)
	require.NoError(t, err)

	assert.Equal(t, 18, updated[1].Stock)
	assert.Equal(t, 8, products[1].Stock, "entrada intacta")
}

func TestRestock_DeltaNaoPositivoRejeitado(t *testing.T) {
	for _, delta := range []int{0, -5} {
		_, err := ledger.Restock(fixtureProducts(), "1", delta)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta %d deve ser rejeitado", delta)
	}
}

func TestRestock_ProdutoInexistente(t *testing.T) {
	_, err := ledger.Restock(fixtureProducts(), "99", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DebtSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtSummary_SomaApenasDividasPositivas(t *testing.T) {
	total := ledger.DebtSummary(fixtureCustomers())
	assert.True(t, total.Equal(dec("173.25")), "45.50 + 127.75; saldo zero fica de fora")
}

func TestDebtSummary_SemClientes(t *testing.T) {
	assert.True(t, ledger.DebtSummary(nil).IsZero())
}
