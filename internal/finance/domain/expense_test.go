package domain

import (
	"math"
	"testing"
	"time"

	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func validExpense() Expense {
	return Expense{
		ID:       "expense-1",
		UserID:   "user-1",
		Title:    "Groceries",
		Amount:   42.50,
		Category: "Food",
		Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpenseValidate(t *testing.T) {
	expense := validExpense()
	assert.NoError(t, expense.Validate())

	expense = validExpense()
	expense.Title = ""
	assert.Equal(t, financeErrors.ErrEmptyTitle, expense.Validate())

	expense = validExpense()
	expense.Amount = 0
	assert.Equal(t, financeErrors.ErrNonPositiveAmount, expense.Validate())

	expense = validExpense()
	expense.Amount = -5
	assert.Equal(t, financeErrors.ErrNonPositiveAmount, expense.Validate())

	expense = validExpense()
	expense.Amount = math.NaN()
	assert.Equal(t, financeErrors.ErrAmountNotFinite, expense.Validate())

	expense = validExpense()
	expense.Category = "Groceries"
	assert.Equal(t, financeErrors.ErrInvalidCategory, expense.Validate())

	expense = validExpense()
	expense.Date = time.Time{}
	assert.True(t, financeErrors.IsValidationError(expense.Validate()))
}

func TestExpenseRoundToTwoDecimalPlaces(t *testing.T) {
	expense := validExpense()
	expense.Amount = 10.005
	expense.RoundToTwoDecimalPlaces()
	assert.InDelta(t, 10.01, expense.Amount, 0.0001)
}

func TestExpenseFilterMatches(t *testing.T) {
	expense := validExpense()

	assert.True(t, ExpenseFilter{}.Matches(&expense))
	assert.True(t, ExpenseFilter{Category: "Food"}.Matches(&expense))
	assert.True(t, ExpenseFilter{MonthKey: "2024-03"}.Matches(&expense))
	assert.True(t, ExpenseFilter{Category: "Food", MonthKey: "2024-03"}.Matches(&expense))

	assert.False(t, ExpenseFilter{Category: "Travel"}.Matches(&expense))
	assert.False(t, ExpenseFilter{MonthKey: "2024-04"}.Matches(&expense))
	// Both predicates must hold.
	assert.False(t, ExpenseFilter{Category: "Food", MonthKey: "2024-04"}.Matches(&expense))
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, IsValidCategory(category))
	}
	assert.False(t, IsValidCategory("food"))
	assert.False(t, IsValidCategory(""))
}
