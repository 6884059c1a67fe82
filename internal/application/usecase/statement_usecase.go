package usecase

import (
	"sort"
	"time"

	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
)

// StatementUseCase gera o extrato de débito de um cliente: as vendas fiado em
// aberto e o saldo devedor, em PDF imprimível.
type StatementUseCase struct {
	store *memory.Store
	gen   StatementGenerator
}

// NewStatementUseCase constrói o caso de uso.
func NewStatementUseCase(store *memory.Store, gen StatementGenerator) *StatementUseCase {
	return &StatementUseCase{store: store, gen: gen}
}

// Generate monta e devolve os bytes do PDF do extrato do cliente.
func (uc *StatementUseCase) Generate(customerID string) ([]byte, error) {
	customer, ok := uc.store.CustomerByID(customerID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var open []entity.Sale
	for _, s := range uc.store.Sales() {
		if s.CustomerID == customerID && !s.Paid {
			open = append(open, s)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Date.Before(open[j].Date)
	})

	names := make(map[string]string)
	for _, p := range uc.store.Products() {
		names[p.ID] = p.Name
	}

	return uc.gen.GenerateStatement(customer, open, names, time.Now())
}
