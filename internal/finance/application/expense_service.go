package application

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
)

type ExpenseService struct {
	repo domain.ExpenseRepository
}

func NewExpenseService(repo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) CreateExpense(userID string, expense *domain.Expense) error {
	expense.ID = uuid.NewString()
	expense.UserID = userID
	expense.RoundToTwoDecimalPlaces()
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*expense)
}

// ownedExpense loads an expense and checks it belongs to the caller. A record
// owned by someone else yields AuthorizationError; handlers surface that the
// same way as not found so existence never leaks.
func (s *ExpenseService) ownedExpense(userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, financeErrors.NewNotFoundError("expense", expenseID)
	}
	if expense.UserID != userID {
		return nil, financeErrors.NewAuthorizationError("expense", expenseID)
	}
	return expense, nil
}

func (s *ExpenseService) UpdateExpense(userID, expenseID string, changes domain.ExpenseUpdate) (*domain.Expense, error) {
	expense, err := s.ownedExpense(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if changes.Title != nil {
		expense.Title = *changes.Title
	}
	if changes.Amount != nil {
		expense.Amount = *changes.Amount
	}
	if changes.Category != nil {
		expense.Category = *changes.Category
	}
	if changes.Date != nil {
		expense.Date = *changes.Date
	}

	expense.RoundToTwoDecimalPlaces()
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(*expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(userID, expenseID string) error {
	if _, err := s.ownedExpense(userID, expenseID); err != nil {
		return err
	}
	return s.repo.Delete(expenseID)
}

// ListExpenses returns the caller's expenses in creation order, narrowed by
// the filter. The month predicate is evaluated through domain.MonthKey over
// the expense date so the bucketing rule lives in exactly one place.
func (s *ExpenseService) ListExpenses(userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Expense, 0, len(expenses))
	for i := range expenses {
		if filter.Matches(&expenses[i]) {
			filtered = append(filtered, expenses[i])
		}
	}
	return filtered, nil
}

// DistinctMonthKeys returns every month present among the caller's expenses,
// newest first.
func (s *ExpenseService) DistinctMonthKeys(userID string) ([]string, error) {
	expenses, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	months := []string{}
	for i := range expenses {
		key := expenses[i].MonthKey()
		if !seen[key] {
			seen[key] = true
			months = append(months, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}
