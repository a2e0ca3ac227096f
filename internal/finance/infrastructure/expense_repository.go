package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense domain.Expense) error {
	_, err := r.db.Exec(
		`INSERT INTO expenses (id, user_id, title, amount, category, date, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		expense.ID, expense.UserID, expense.Title, expense.Amount, expense.Category, expense.Date,
	)
	if err != nil {
		return financeErrors.NewStorageError("expense insert", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(expenseID string) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.QueryRow(
		`SELECT id, user_id, title, amount, category, date, created_at, updated_at
         FROM expenses WHERE id = $1`,
		expenseID,
	).Scan(&expense.ID, &expense.UserID, &expense.Title, &expense.Amount,
		&expense.Category, &expense.Date, &expense.CreatedAt, &expense.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, financeErrors.NewStorageError("expense lookup", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, amount, category, date, created_at, updated_at
         FROM expenses WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, financeErrors.NewStorageError("expense listing", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Title, &expense.Amount,
			&expense.Category, &expense.Date, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, financeErrors.NewStorageError("expense scan", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, financeErrors.NewStorageError("expense listing", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(expense domain.Expense) error {
	result, err := r.db.Exec(
		`UPDATE expenses SET title = $1, amount = $2, category = $3, date = $4, updated_at = now()
         WHERE id = $5`,
		expense.Title, expense.Amount, expense.Category, expense.Date, expense.ID,
	)
	if err != nil {
		return financeErrors.NewStorageError("expense update", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return financeErrors.NewStorageError("expense update", err)
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("expense", expense.ID)
	}
	return nil
}

func (r *ExpenseRepository) Delete(expenseID string) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return financeErrors.NewStorageError("expense delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return financeErrors.NewStorageError("expense delete", err)
	}
	if affected == 0 {
		return financeErrors.NewNotFoundError("expense", expenseID)
	}
	return nil
}
