package usecase

import (
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
)

// ExpenseUseCase listagem de despesas (somente leitura no escopo atual).
type ExpenseUseCase struct {
	store *memory.Store
}

// NewExpenseUseCase constrói o caso de uso.
func NewExpenseUseCase(store *memory.Store) *ExpenseUseCase {
	return &ExpenseUseCase{store: store}
}

// List lista todas as despesas.
func (uc *ExpenseUseCase) List() *dto.ExpenseListResponse {
	expenses := uc.store.Expenses()
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, dto.ExpenseResponse{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
			Category:    string(e.Category),
		})
	}
	return &dto.ExpenseListResponse{Items: items, Total: len(items)}
}
