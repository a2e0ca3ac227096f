package application

import (
	"testing"
	"time"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
	"github.com/mkarwowski/budgetly/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpense(title string, amount float64, category string, date time.Time) *domain.Expense {
	return &domain.Expense{
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestCreateExpense_AppearsExactlyOnceInListing(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	expense := newExpense("Groceries", 42.50, "Food", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, service.CreateExpense("user-1", expense))
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "user-1", expense.UserID)

	expenses, err := service.ListExpenses("user-1", domain.ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, expense.ID, expenses[0].ID)
}

func TestCreateExpense_RejectsInvalidFields(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	err := service.CreateExpense("user-1", newExpense("", 10, "Food", date))
	assert.True(t, financeErrors.IsValidationError(err))

	err = service.CreateExpense("user-1", newExpense("Bus ticket", -3, "Transport", date))
	assert.True(t, financeErrors.IsValidationError(err))

	err = service.CreateExpense("user-1", newExpense("Bus ticket", 3, "Commute", date))
	assert.True(t, financeErrors.IsValidationError(err))

	assert.Empty(t, repo.Expenses)
}

func TestCreateExpense_RoundsAmount(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	expense := newExpense("Coffee", 3.009, "Food", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, service.CreateExpense("user-1", expense))
	assert.InDelta(t, 3.01, expense.Amount, 0.0001)
}

func TestListExpenses_FilterCombinesWithANDSemantics(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	march := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, service.CreateExpense("user-1", newExpense("Groceries", 20, "Food", march)))
	require.NoError(t, service.CreateExpense("user-1", newExpense("Restaurant", 35, "Food", april)))
	require.NoError(t, service.CreateExpense("user-1", newExpense("Train", 12, "Transport", march)))
	require.NoError(t, service.CreateExpense("user-2", newExpense("Groceries", 50, "Food", march)))

	expenses, err := service.ListExpenses("user-1", domain.ExpenseFilter{Category: "Food", MonthKey: "2024-03"})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Groceries", expenses[0].Title)
	assert.Equal(t, "user-1", expenses[0].UserID)

	// Empty filter returns everything the caller owns.
	expenses, err = service.ListExpenses("user-1", domain.ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, expenses, 3)
}

func TestUpdateExpense(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	expense := newExpense("Groceries", 20, "Food", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, service.CreateExpense("user-1", expense))

	newTitle := "Weekly groceries"
	newAmount := 25.0
	updated, err := service.UpdateExpense("user-1", expense.ID, domain.ExpenseUpdate{Title: &newTitle, Amount: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", updated.Title)
	assert.Equal(t, 25.0, updated.Amount)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, "user-1", updated.UserID)

	// Changed fields are re-validated.
	badAmount := -1.0
	_, err = service.UpdateExpense("user-1", expense.ID, domain.ExpenseUpdate{Amount: &badAmount})
	assert.True(t, financeErrors.IsValidationError(err))

	_, err = service.UpdateExpense("user-1", "missing-id", domain.ExpenseUpdate{Title: &newTitle})
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.UpdateExpense("user-2", expense.ID, domain.ExpenseUpdate{Title: &newTitle})
	assert.True(t, financeErrors.IsAuthorizationError(err))
}

func TestDeleteExpense_NeverSilentlySucceeds(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	expense := newExpense("Groceries", 20, "Food", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, service.CreateExpense("user-1", expense))

	// Someone else's id looks like "not found" semantics internally tagged
	// as an authorization failure.
	err := service.DeleteExpense("user-2", expense.ID)
	assert.True(t, financeErrors.IsAuthorizationError(err))

	require.NoError(t, service.DeleteExpense("user-1", expense.ID))

	// Repeating the delete fails instead of silently succeeding.
	err = service.DeleteExpense("user-1", expense.ID)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestDistinctMonthKeys_SortedDescending(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo)

	dates := []time.Time{
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		require.NoError(t, service.CreateExpense("user-1", newExpense("Item", 5, "Other", date)))
	}

	months, err := service.DistinctMonthKeys("user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03", "2024-01", "2023-12"}, months)
}
