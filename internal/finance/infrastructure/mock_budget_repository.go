package infrastructure

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkarwowski/budgetly/internal/finance/domain"
)

// MockBudgetRepository mimics the unique-constraint semantics of the real
// store: one record per (user, month), upsert under a lock.
type MockBudgetRepository struct {
	mu       sync.Mutex
	Budgets  map[string]domain.Budget
	FailWith error
}

func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{Budgets: make(map[string]domain.Budget)}
}

func budgetKey(userID, month string) string {
	return userID + "|" + month
}

func (m *MockBudgetRepository) Find(userID, month string) (*domain.Budget, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	budget, ok := m.Budgets[budgetKey(userID, month)]
	if !ok {
		return nil, nil
	}
	return &budget, nil
}

func (m *MockBudgetRepository) Upsert(userID, month string, amount float64) (*domain.Budget, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	key := budgetKey(userID, month)
	budget, ok := m.Budgets[key]
	if !ok {
		budget = domain.Budget{
			ID:        uuid.NewString(),
			UserID:    userID,
			Month:     month,
			CreatedAt: now,
		}
	}
	budget.Amount = amount
	budget.UpdatedAt = now
	m.Budgets[key] = budget
	return &budget, nil
}

// Count reports how many records exist for the pair. The real store can
// never hold more than one; tests assert the mock converges the same way.
func (m *MockBudgetRepository) Count(userID, month string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Budgets[budgetKey(userID, month)]; ok {
		return 1
	}
	return 0
}
