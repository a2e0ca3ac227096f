package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Find(userID, month string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`SELECT id, user_id, amount, month, created_at, updated_at
         FROM budgets WHERE user_id = $1 AND month = $2`,
		userID, month,
	).Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.Month,
		&budget.CreatedAt, &budget.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, financeErrors.NewStorageError("budget lookup", err)
	}
	return &budget, nil
}

// Upsert relies on the unique constraint on (user_id, month): the whole
// insert-or-update runs as one statement, so concurrent calls for the same
// pair serialize inside the database and the last committed amount wins. A
// check-then-write sequence here would race.
func (r *BudgetRepository) Upsert(userID, month string, amount float64) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`INSERT INTO budgets (id, user_id, amount, month, created_at, updated_at)
         VALUES ($1, $2, $3, $4, now(), now())
         ON CONFLICT (user_id, month)
         DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
         RETURNING id, user_id, amount, month, created_at, updated_at`,
		uuid.NewString(), userID, amount, month,
	).Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.Month,
		&budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return nil, financeErrors.NewStorageError("budget upsert", err)
	}
	return &budget, nil
}
