package interfaces

import (
	"github.com/mkarwowski/budgetly/internal/finance/application"
	"github.com/mkarwowski/budgetly/internal/finance/domain"
)

type MockBudgetService struct {
	GetBudgetFn    func(userID, month string) (*domain.Budget, error)
	UpsertBudgetFn func(userID, month string, amount float64) (*domain.Budget, error)
}

func (m *MockBudgetService) GetBudget(userID, month string) (*domain.Budget, error) {
	if m.GetBudgetFn != nil {
		return m.GetBudgetFn(userID, month)
	}
	return nil, nil
}

func (m *MockBudgetService) UpsertBudget(userID, month string, amount float64) (*domain.Budget, error) {
	if m.UpsertBudgetFn != nil {
		return m.UpsertBudgetFn(userID, month, amount)
	}
	return nil, nil
}

type MockReconciliationService struct {
	ReconcileFn func(userID, month string) (*application.Snapshot, error)
}

func (m *MockReconciliationService) Reconcile(userID, month string) (*application.Snapshot, error) {
	if m.ReconcileFn != nil {
		return m.ReconcileFn(userID, month)
	}
	return &application.Snapshot{Month: month}, nil
}
