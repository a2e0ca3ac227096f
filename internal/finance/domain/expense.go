package domain

import (
	"math"
	"time"

	"github.com/mkarwowski/budgetly/internal/finance/errors"
)

// Categories is the fixed set an expense may belong to. There are no
// user-defined categories.
var Categories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Healthcare",
	"Education",
	"Travel",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if e.Title == "" {
		return errors.ErrEmptyTitle
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return errors.ErrAmountNotFinite
	}
	if e.Amount <= 0 {
		return errors.ErrNonPositiveAmount
	}
	if !IsValidCategory(e.Category) {
		return errors.ErrInvalidCategory
	}
	if e.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	return nil
}

func (e *Expense) RoundToTwoDecimalPlaces() {
	e.Amount = math.Round(e.Amount*100) / 100
}

// MonthKey returns the budget period this expense falls into. The
// association to a budget is recomputed from the date on every read; it is
// never stored.
func (e *Expense) MonthKey() string {
	return MonthKey(e.Date)
}

// ExpenseUpdate carries a partial update. Nil fields are left untouched.
// The owner of an expense can never change.
type ExpenseUpdate struct {
	Title    *string    `json:"title"`
	Amount   *float64   `json:"amount"`
	Category *string    `json:"category"`
	Date     *time.Time `json:"date"`
}

// ExpenseFilter narrows a listing. Zero values mean "no constraint"; both
// predicates combine with AND semantics.
type ExpenseFilter struct {
	Category string
	MonthKey string
}

func (f ExpenseFilter) Matches(e *Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.MonthKey != "" && e.MonthKey() != f.MonthKey {
		return false
	}
	return true
}

type ExpenseRepository interface {
	Save(expense Expense) error
	FindByID(expenseID string) (*Expense, error)
	FindByUser(userID string) ([]Expense, error)
	Update(expense Expense) error
	Delete(expenseID string) error
}
