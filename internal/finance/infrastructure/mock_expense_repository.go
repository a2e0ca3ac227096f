package infrastructure

import (
	"sync"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
)

// MockExpenseRepository keeps expenses in insertion order in memory. Used by
// service and handler tests in place of Postgres.
type MockExpenseRepository struct {
	mu       sync.Mutex
	Expenses []domain.Expense
	FailWith error
}

func (m *MockExpenseRepository) Save(expense domain.Expense) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Expenses = append(m.Expenses, expense)
	return nil
}

func (m *MockExpenseRepository) FindByID(expenseID string) (*domain.Expense, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			expense := m.Expenses[i]
			return &expense, nil
		}
	}
	return nil, nil
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var expenses []domain.Expense
	for i := range m.Expenses {
		if m.Expenses[i].UserID == userID {
			expenses = append(expenses, m.Expenses[i])
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = expense
			return nil
		}
	}
	return financeErrors.NewNotFoundError("expense", expense.ID)
}

func (m *MockExpenseRepository) Delete(expenseID string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundError("expense", expenseID)
}
