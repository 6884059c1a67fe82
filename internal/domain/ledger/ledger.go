// Package ledger contém as operações puras do livro-caixa da padaria:
// composição de vendas, baixa de dívida e reposição de estoque.
//
// Todas as funções recebem as coleções atuais e devolvem coleções novas com
// exatamente os deltas descritos; as entradas nunca são modificadas. Nenhuma
// função faz I/O. A aplicação das saídas ao estado canônico é responsabilidade
// do store (internal/infrastructure/memory).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
)

// SaleLine par (produto, quantidade) de um rascunho de venda.
type SaleLine struct {
	ProductID string
	Quantity  int
}

// SaleDraft rascunho de venda vindo da camada de apresentação.
// CustomerID vazio = venda de balcão; obrigatório quando PaymentMethod é fiado.
type SaleDraft struct {
	CustomerID    string
	PaymentMethod entity.PaymentMethod
	Lines         []SaleLine
}

// ComposeSale valida o rascunho e compõe a venda.
//
// Regras:
//   - pelo menos uma linha, cada uma com quantidade >= 1 e produto existente;
//   - fiado exige cliente cadastrado;
//   - estoque suficiente em todas as linhas;
//   - preço da linha = preço atual do produto × quantidade (capturado agora);
//   - total = soma dos preços das linhas; Paid = (método != fiado);
//   - fiado soma o total à dívida do cliente e atualiza LastPurchaseDate;
//   - o estoque é decrementado por unidade vendida.
//
// Toda a validação acontece antes de qualquer saída ser construída: ou a venda
// inteira é composta, ou nada muda (tudo-ou-nada). A venda devolvida não tem ID;
// o store o atribui ao aplicar as saídas.
func ComposeSale(
	customers []entity.Customer,
	products []entity.Product,
	draft SaleDraft,
	now time.Time,
) (entity.Sale, []entity.Product, []entity.Customer, error) {
	if len(draft.Lines) == 0 {
		return entity.Sale{}, nil, nil, domain.ErrInvalidInput
	}
	if !draft.PaymentMethod.Valid() {
		return entity.Sale{}, nil, nil, domain.ErrInvalidInput
	}
	if draft.PaymentMethod == entity.PaymentCredit && draft.CustomerID == "" {
		return entity.Sale{}, nil, nil, domain.ErrCreditRequiresCustomer
	}

	productIdx := make(map[string]int, len(products))
	for i, p := range products {
		productIdx[p.ID] = i
	}

	var customerPos = -1
	if draft.CustomerID != "" {
		for i, c := range customers {
			if c.ID == draft.CustomerID {
				customerPos = i
				break
			}
		}
		if customerPos < 0 {
			return entity.Sale{}, nil, nil, domain.ErrNotFound
		}
	}

	// Linhas repetidas do mesmo produto são fundidas em uma só,
	// preservando a ordem da primeira ocorrência.
	merged := make([]SaleLine, 0, len(draft.Lines))
	mergedIdx := make(map[string]int, len(draft.Lines))
	for _, line := range draft.Lines {
		if line.Quantity < 1 {
			return entity.Sale{}, nil, nil, domain.ErrInvalidInput
		}
		if _, ok := productIdx[line.ProductID]; !ok {
			return entity.Sale{}, nil, nil, domain.ErrNotFound
		}
		if i, ok := mergedIdx[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		mergedIdx[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	// Estoque verificado sobre as quantidades já fundidas, antes de compor
	// qualquer saída (tudo-ou-nada).
	for _, line := range merged {
		if products[productIdx[line.ProductID]].Stock < line.Quantity {
			return entity.Sale{}, nil, nil, domain.ErrInsufficientStock
		}
	}

	items := make([]entity.SaleItem, 0, len(merged))
	total := decimal.Zero
	updatedProducts := cloneProducts(products)
	for _, line := range merged {
		i := productIdx[line.ProductID]
		unit := products[i].Price
		price := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, entity.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			Price:     price,
		})
		total = total.Add(price)
		updatedProducts[i].Stock -= line.Quantity
	}

	paid := draft.PaymentMethod != entity.PaymentCredit
	sale := entity.Sale{
		Date:          now,
		CustomerID:    draft.CustomerID,
		Items:         items,
		Total:         total,
		PaymentMethod: draft.PaymentMethod,
		Paid:          paid,
	}

	updatedCustomers := cloneCustomers(customers)
	if !paid {
		c := &updatedCustomers[customerPos]
		c.DebtAmount = c.DebtAmount.Add(total)
		c.LastPurchaseDate = now
	} else if customerPos >= 0 {
		updatedCustomers[customerPos].LastPurchaseDate = now
	}

	return sale, updatedProducts, updatedCustomers, nil
}

// ApplyPayment abate um pagamento da dívida do cliente.
// Rejeita valores não positivos e pagamentos maiores que a dívida atual;
// a dívida nunca fica negativa. LastPaymentDate recebe o instante do pagamento.
func ApplyPayment(
	customers []entity.Customer,
	customerID string,
	amount decimal.Decimal,
	now time.Time,
) ([]entity.Customer, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	pos := -1
	for i, c := range customers {
		if c.ID == customerID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, domain.ErrNotFound
	}
	if amount.GreaterThan(customers[pos].DebtAmount) {
		return nil, domain.ErrPaymentExceedsDebt
	}

	updated := cloneCustomers(customers)
	c := &updated[pos]
	c.DebtAmount = c.DebtAmount.Sub(amount)
	if c.DebtAmount.LessThan(decimal.Zero) {
		c.DebtAmount = decimal.Zero
	}
	paidAt := now
	c.LastPaymentDate = &paidAt
	return updated, nil
}

// Restock incrementa o estoque de um produto. Delta deve ser positivo.
func Restock(products []entity.Product, productID string, delta int) ([]entity.Product, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidInput
	}
	pos := -1
	for i, p := range products {
		if p.ID == productID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, domain.ErrNotFound
	}
	updated := cloneProducts(products)
	updated[pos].Stock += delta
	return updated, nil
}

// DebtSummary soma as dívidas positivas de todos os clientes (total a receber).
func DebtSummary(customers []entity.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		if c.HasDebt() {
			total = total.Add(c.DebtAmount)
		}
	}
	return total
}

func cloneCustomers(customers []entity.Customer) []entity.Customer {
	out := make([]entity.Customer, len(customers))
	copy(out, customers)
	return out
}

func cloneProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)
	return out
}
