package interfaces

import (
	"github.com/mkarwowski/budgetly/internal/finance/domain"
)

// MockExpenseService lets handler tests script each operation through func
// fields. Unset operations return zero values.
type MockExpenseService struct {
	CreateExpenseFn     func(userID string, expense *domain.Expense) error
	UpdateExpenseFn     func(userID, expenseID string, changes domain.ExpenseUpdate) (*domain.Expense, error)
	DeleteExpenseFn     func(userID, expenseID string) error
	ListExpensesFn      func(userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
	DistinctMonthKeysFn func(userID string) ([]string, error)
}

func (m *MockExpenseService) CreateExpense(userID string, expense *domain.Expense) error {
	if m.CreateExpenseFn != nil {
		return m.CreateExpenseFn(userID, expense)
	}
	return nil
}

func (m *MockExpenseService) UpdateExpense(userID, expenseID string, changes domain.ExpenseUpdate) (*domain.Expense, error) {
	if m.UpdateExpenseFn != nil {
		return m.UpdateExpenseFn(userID, expenseID, changes)
	}
	return nil, nil
}

func (m *MockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.DeleteExpenseFn != nil {
		return m.DeleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *MockExpenseService) ListExpenses(userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if m.ListExpensesFn != nil {
		return m.ListExpensesFn(userID, filter)
	}
	return nil, nil
}

func (m *MockExpenseService) DistinctMonthKeys(userID string) ([]string, error) {
	if m.DistinctMonthKeysFn != nil {
		return m.DistinctMonthKeysFn(userID)
	}
	return nil, nil
}
