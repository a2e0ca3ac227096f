package domain

import (
	"math"
	"time"

	"github.com/mkarwowski/budgetly/internal/finance/errors"
)

// Budget is the single spending limit a user sets for one month. At most one
// record exists per (UserID, Month) pair; the storage layer enforces this
// with a unique constraint and an atomic upsert.
type Budget struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Amount    float64   `json:"amount"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Budget) Validate() error {
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return errors.ErrAmountNotFinite
	}
	if b.Amount < 0 {
		return errors.ErrNegativeBudget
	}
	if !ValidMonthKey(b.Month) {
		return errors.ErrInvalidMonthKey
	}
	return nil
}

type BudgetRepository interface {
	// Find returns (nil, nil) when no budget exists for the pair.
	Find(userID, month string) (*Budget, error)
	// Upsert inserts or overwrites the record for (userID, month) in one
	// atomic statement and returns the post-write state.
	Upsert(userID, month string, amount float64) (*Budget, error)
}
