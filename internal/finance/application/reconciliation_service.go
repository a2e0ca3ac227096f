package application

import (
	"errors"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	"github.com/sirupsen/logrus"
)

// Snapshot is the result of reconciling one month's spending against its
// budget. It is recomputed from current store state on every call and never
// cached, so it always reflects the latest writes.
type Snapshot struct {
	Month          string  `json:"month"`
	HasBudget      bool    `json:"has_budget"`
	BudgetAmount   float64 `json:"budget_amount"`
	SpentAmount    float64 `json:"spent_amount"`
	PercentageUsed float64 `json:"percentage_used"`
	Remaining      float64 `json:"remaining"`
	IsOverBudget   bool    `json:"is_over_budget"`
}

var ErrInconsistentLedger = errors.New("expense ledger produced a negative spend total")

type ReconciliationService struct {
	budgets  *BudgetService
	expenses *ExpenseService
	logger   *logrus.Logger
}

func NewReconciliationService(budgets *BudgetService, expenses *ExpenseService, logger *logrus.Logger) *ReconciliationService {
	return &ReconciliationService{budgets: budgets, expenses: expenses, logger: logger}
}

// Reconcile reads both stores and derives the spend-vs-budget metrics for the
// month. The two reads are independent; a write landing between them is an
// accepted, bounded inconsistency window.
func (s *ReconciliationService) Reconcile(userID, month string) (*Snapshot, error) {
	budget, err := s.budgets.GetBudget(userID, month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListExpenses(userID, domain.ExpenseFilter{MonthKey: month})
	if err != nil {
		return nil, err
	}

	var spent float64
	for i := range expenses {
		spent += expenses[i].Amount
	}
	if spent < 0 {
		// The ledger only stores positive amounts, so a negative sum means
		// corrupted state, not bad input.
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"month":   month,
			"spent":   spent,
		}).Error("reconciliation found a negative spend total")
		return nil, ErrInconsistentLedger
	}

	snapshot := &Snapshot{
		Month:       month,
		SpentAmount: spent,
	}
	if budget == nil {
		// With no budget set there is nothing to exceed, so the over-budget
		// flag stays false regardless of spend.
		return snapshot, nil
	}

	snapshot.HasBudget = true
	snapshot.BudgetAmount = budget.Amount
	snapshot.Remaining = budget.Amount - spent
	snapshot.IsOverBudget = spent > budget.Amount
	if budget.Amount > 0 {
		percentage := spent / budget.Amount * 100
		if percentage > 100 {
			percentage = 100
		}
		snapshot.PercentageUsed = percentage
	}
	return snapshot, nil
}
