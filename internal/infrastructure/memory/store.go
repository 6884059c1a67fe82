// Package memory implementa o armazenamento canônico da aplicação: todas as
// coleções vivem na memória do processo, carregadas do seed na inicialização e
// descartadas no encerramento. Não há persistência; cada reinício volta ao seed.
package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/domain/ledger"
)

// State coleções iniciais do store (normalmente vindas do seed).
type State struct {
	Customers []entity.Customer
	Products  []entity.Product
	Sales     []entity.Sale
	Expenses  []entity.Expense
}

// Store é o contêiner de estado da aplicação. Leituras devolvem cópias;
// escritas acontecem sob o lock e, para vendas, pagamentos e reposições,
// aplicam exclusivamente as saídas das operações do ledger — nenhum caminho
// muta as entidades por fora delas.
type Store struct {
	mu        sync.RWMutex
	customers []entity.Customer
	products  []entity.Product
	sales     []entity.Sale
	expenses  []entity.Expense
}

// New constrói o store a partir do estado inicial.
func New(initial State) *Store {
	sales := make([]entity.Sale, len(initial.Sales))
	for i, sale := range initial.Sales {
		sales[i] = cloneSale(sale)
	}
	return &Store{
		customers: append([]entity.Customer(nil), initial.Customers...),
		products:  append([]entity.Product(nil), initial.Products...),
		sales:     sales,
		expenses:  append([]entity.Expense(nil), initial.Expenses...),
	}
}

// ── Leituras (snapshots) ─────────────────────────────────────────────────────

// Customers devolve uma cópia da coleção de clientes.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Customer(nil), s.customers...)
}

// Products devolve uma cópia da coleção de produtos.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

// Sales devolve uma cópia da coleção de vendas. Os Items de cada venda também
// são copiados: nenhum snapshot compartilha memória com o estado canônico.
func (s *Store) Sales() []entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Sale, len(s.sales))
	for i, sale := range s.sales {
		out[i] = cloneSale(sale)
	}
	return out
}

// Expenses devolve uma cópia da coleção de despesas.
func (s *Store) Expenses() []entity.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Expense(nil), s.expenses...)
}

// CustomerByID busca um cliente pelo ID.
func (s *Store) CustomerByID(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// ProductByID busca um produto pelo ID.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// SaleByID busca uma venda pelo ID.
func (s *Store) SaleByID(id string) (entity.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			return cloneSale(sale), true
		}
	}
	return entity.Sale{}, false
}

// cloneSale copia a venda junto com suas linhas.
func cloneSale(sale entity.Sale) entity.Sale {
	sale.Items = append([]entity.SaleItem(nil), sale.Items...)
	return sale
}

// ── Operações do ledger ──────────────────────────────────────────────────────
// Cada operação roda inteira sob o lock de escrita: compõe as saídas via ledger
// e as aplica, ou devolve o erro sem tocar em nada.

// RecordSale registra uma venda. A venda recebe um ID sequencial do store.
func (s *Store) RecordSale(draft ledger.SaleDraft, now time.Time) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, products, customers, err := ledger.ComposeSale(s.customers, s.products, draft, now)
	if err != nil {
		return entity.Sale{}, err
	}
	sale.ID = strconv.Itoa(len(s.sales) + 1)
	s.sales = append(s.sales, sale)
	s.products = products
	s.customers = customers
	return cloneSale(sale), nil
}

// RecordPayment abate um pagamento da dívida do cliente.
func (s *Store) RecordPayment(customerID string, amount decimal.Decimal, now time.Time) (entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := ledger.ApplyPayment(s.customers, customerID, amount, now)
	if err != nil {
		return entity.Customer{}, err
	}
	s.customers = customers
	for _, c := range s.customers {
		if c.ID == customerID {
			return c, nil
		}
	}
	return entity.Customer{}, domain.ErrNotFound
}

// RecordRestock incrementa o estoque de um produto.
func (s *Store) RecordRestock(productID string, delta int) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := ledger.Restock(s.products, productID, delta)
	if err != nil {
		return entity.Product{}, err
	}
	s.products = products
	for _, p := range s.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// ── Cadastro de entidades ────────────────────────────────────────────────────

// AddCustomer insere um cliente novo e atribui o próximo ID sequencial.
func (s *Store) AddCustomer(c entity.Customer) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = strconv.Itoa(len(s.customers) + 1)
	s.customers = append(s.customers, c)
	return c
}

// ReplaceCustomer substitui um cliente existente (mesmo ID).
func (s *Store) ReplaceCustomer(c entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

// AddProduct insere um produto novo e atribui o próximo ID sequencial.
func (s *Store) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = strconv.Itoa(len(s.products) + 1)
	s.products = append(s.products, p)
	return p
}

// ReplaceProduct substitui um produto existente (mesmo ID).
func (s *Store) ReplaceProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Notificações ─────────────────────────────────────────────────────────────

// MarkNotified registra a entrega de um alerta de dívida ao cliente.
func (s *Store) MarkNotified(customerID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			sentAt := at
			s.customers[i].NotificationSent = true
			s.customers[i].NotificationSentAt = &sentAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// ResetNotifications limpa o status de notificação de todos os clientes,
// liberando um novo ciclo de alertas.
func (s *Store) ResetNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		s.customers[i].NotificationSent = false
		s.customers[i].NotificationSentAt = nil
	}
}
