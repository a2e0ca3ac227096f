package interfaces

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpenseHandler(service *MockExpenseService) *ExpenseHandler {
	if service == nil {
		service = &MockExpenseService{}
	}
	return NewExpenseHandler(service, testLogger(), respondJSON, respondError)
}

func TestCreateExpense_Success(t *testing.T) {
	service := &MockExpenseService{
		CreateExpenseFn: func(userID string, expense *domain.Expense) error {
			expense.ID = "expense-1"
			expense.UserID = userID
			return nil
		},
	}
	handler := newExpenseHandler(service)

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Groceries",
		"amount":   42.5,
		"category": "Food",
		"date":     "2024-03-10T00:00:00Z",
	})
	req := authenticated(httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBuffer(body)), "user-1")
	w := httptest.NewRecorder()
	handler.CreateExpense(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "expense-1", data["id"])
	assert.Equal(t, "Groceries", data["title"])
}

func TestCreateExpense_ValidationError(t *testing.T) {
	handler := newExpenseHandler(&MockExpenseService{
		CreateExpenseFn: func(userID string, expense *domain.Expense) error {
			return financeErrors.ErrNonPositiveAmount
		},
	})

	body, _ := json.Marshal(map[string]interface{}{
		"title":    "Groceries",
		"amount":   -5,
		"category": "Food",
		"date":     "2024-03-10T00:00:00Z",
	})
	req := authenticated(httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBuffer(body)), "user-1")
	w := httptest.NewRecorder()
	handler.CreateExpense(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateExpense_InvalidBody(t *testing.T) {
	handler := newExpenseHandler(nil)

	req := authenticated(httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBufferString("not json")), "user-1")
	w := httptest.NewRecorder()
	handler.CreateExpense(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateExpense_Unauthorized(t *testing.T) {
	handler := newExpenseHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	handler.CreateExpense(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestListExpenses_PassesFilterAndReturnsTotals(t *testing.T) {
	var gotFilter domain.ExpenseFilter
	handler := newExpenseHandler(&MockExpenseService{
		ListExpensesFn: func(userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
			gotFilter = filter
			return []domain.Expense{
				{ID: "expense-1", Title: "Groceries", Amount: 20, Category: "Food", Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
				{ID: "expense-2", Title: "Restaurant", Amount: 35, Category: "Food", Date: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/expenses?category=Food&month=2024-03", nil), "user-1")
	w := httptest.NewRecorder()
	handler.ListExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, domain.ExpenseFilter{Category: "Food", MonthKey: "2024-03"}, gotFilter)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["count"])
	assert.Equal(t, 55.0, data["total"])
}

func TestListExpenses_InvalidFilterValues(t *testing.T) {
	handler := newExpenseHandler(nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/expenses?category=Unknown", nil), "user-1")
	w := httptest.NewRecorder()
	handler.ListExpenses(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	req = authenticated(httptest.NewRequest(http.MethodGet, "/expenses?month=March", nil), "user-1")
	w = httptest.NewRecorder()
	handler.ListExpenses(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteExpense_NotFoundAndForeignOwnerLookTheSame(t *testing.T) {
	missing := newExpenseHandler(&MockExpenseService{
		DeleteExpenseFn: func(userID, expenseID string) error {
			return financeErrors.NewNotFoundError("expense", expenseID)
		},
	})
	foreign := newExpenseHandler(&MockExpenseService{
		DeleteExpenseFn: func(userID, expenseID string) error {
			return financeErrors.NewAuthorizationError("expense", expenseID)
		},
	})

	for _, handler := range []*ExpenseHandler{missing, foreign} {
		req := authenticated(httptest.NewRequest(http.MethodDelete, "/expenses/expense-1", nil), "user-1")
		req.SetPathValue("expenseID", "expense-1")
		w := httptest.NewRecorder()
		handler.DeleteExpense(w, req)

		res := w.Result()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
		res.Body.Close()
		// Identical body in both cases so existence does not leak.
		assert.Equal(t, "Resource not found", response["message"])
	}
}

func TestUpdateExpense_Success(t *testing.T) {
	handler := newExpenseHandler(&MockExpenseService{
		UpdateExpenseFn: func(userID, expenseID string, changes domain.ExpenseUpdate) (*domain.Expense, error) {
			require.NotNil(t, changes.Title)
			return &domain.Expense{ID: expenseID, Title: *changes.Title, Amount: 20, Category: "Food"}, nil
		},
	})

	body, _ := json.Marshal(map[string]interface{}{"title": "Updated"})
	req := authenticated(httptest.NewRequest(http.MethodPut, "/expenses/expense-1", bytes.NewBuffer(body)), "user-1")
	req.SetPathValue("expenseID", "expense-1")
	w := httptest.NewRecorder()
	handler.UpdateExpense(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Updated", data["title"])
}

func TestGetExpenseMonths(t *testing.T) {
	handler := newExpenseHandler(&MockExpenseService{
		DistinctMonthKeysFn: func(userID string) ([]string, error) {
			return []string{"2024-04", "2024-03"}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/expenses/months", nil), "user-1")
	w := httptest.NewRecorder()
	handler.GetExpenseMonths(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, []interface{}{"2024-04", "2024-03"}, response["data"])
}

func TestGetCategories_ReturnsFixedSet(t *testing.T) {
	handler := newExpenseHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	categories := response["data"].([]interface{})
	assert.Len(t, categories, len(domain.Categories))
	assert.Contains(t, categories, "Food")
	assert.Contains(t, categories, "Other")
}
