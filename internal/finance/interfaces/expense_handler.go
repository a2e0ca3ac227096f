package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/mkarwowski/budgetly/internal/finance/domain"
	"github.com/sirupsen/logrus"
)

type ExpenseServiceInterface interface {
	CreateExpense(userID string, expense *domain.Expense) error
	UpdateExpense(userID, expenseID string, changes domain.ExpenseUpdate) (*domain.Expense, error)
	DeleteExpense(userID, expenseID string) error
	ListExpenses(userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
	DistinctMonthKeys(userID string) ([]string, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	logger       *logrus.Logger
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	logger *logrus.Logger,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil || logger == nil || respondJSON == nil || respondError == nil {
		panic("Service, logger and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:      service,
		logger:       logger,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var expense domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateExpense(userID, &expense); err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to create expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully created.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var filter domain.ExpenseFilter
	if category := r.URL.Query().Get("category"); category != "" {
		if !domain.IsValidCategory(category) {
			h.respondError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		filter.Category = category
	}
	if month := r.URL.Query().Get("month"); month != "" {
		if !domain.ValidMonthKey(month) {
			h.respondError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
			return
		}
		filter.MonthKey = month
	}

	expenses, err := h.service.ListExpenses(userID, filter)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to retrieve expenses")
		return
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	var total float64
	for i := range expenses {
		total += expenses[i].Amount
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expenses retrieved successfully.",
		"data": map[string]interface{}{
			"expenses": expenses,
			"count":    len(expenses),
			"total":    total,
		},
	})
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	expenseID := r.PathValue("expenseID")
	if expenseID == "" {
		h.respondError(w, http.StatusBadRequest, "Expense ID is required")
		return
	}

	var changes domain.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.UpdateExpense(userID, expenseID, changes)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to update expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully updated.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	expenseID := r.PathValue("expenseID")
	if expenseID == "" {
		h.respondError(w, http.StatusBadRequest, "Expense ID is required")
		return
	}

	if err := h.service.DeleteExpense(userID, expenseID); err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to delete expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully deleted.",
	})
}

func (h *ExpenseHandler) GetExpenseMonths(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	months, err := h.service.DistinctMonthKeys(userID)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to retrieve months")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Months retrieved successfully.",
		"data":    months,
	})
}

func (h *ExpenseHandler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories retrieved successfully.",
		"data":    domain.Categories,
	})
}
