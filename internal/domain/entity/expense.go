package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory categoria fixa de despesa.
type ExpenseCategory string

const (
	ExpenseIngredients ExpenseCategory = "ingredients"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseSalary      ExpenseCategory = "salary"
	ExpenseEquipment   ExpenseCategory = "equipment"
	ExpenseOther       ExpenseCategory = "other"
)

// Expense despesa registrada. Somente leitura no escopo atual (alimenta o dashboard).
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    ExpenseCategory
}
