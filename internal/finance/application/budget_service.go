package application

import (
	"math"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// GetBudget returns the caller's budget for the month, or nil when none has
// been set. "No budget" and "zero budget" are different states and callers
// must not conflate them.
func (s *BudgetService) GetBudget(userID, month string) (*domain.Budget, error) {
	if !domain.ValidMonthKey(month) {
		return nil, financeErrors.ErrInvalidMonthKey
	}
	return s.repo.Find(userID, month)
}

// UpsertBudget creates or overwrites the caller's budget for the month. The
// write is a single atomic insert-or-update guarded by the unique constraint
// on (user_id, month); two concurrent calls converge on one record holding
// the last committed amount.
func (s *BudgetService) UpsertBudget(userID, month string, amount float64) (*domain.Budget, error) {
	budget := domain.Budget{UserID: userID, Amount: amount, Month: month}
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	amount = math.Round(amount*100) / 100
	return s.repo.Upsert(userID, month, amount)
}
