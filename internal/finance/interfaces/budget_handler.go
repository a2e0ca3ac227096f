package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/mkarwowski/budgetly/internal/finance/application"
	"github.com/mkarwowski/budgetly/internal/finance/domain"
	"github.com/sirupsen/logrus"
)

type BudgetServiceInterface interface {
	GetBudget(userID, month string) (*domain.Budget, error)
	UpsertBudget(userID, month string, amount float64) (*domain.Budget, error)
}

type ReconciliationServiceInterface interface {
	Reconcile(userID, month string) (*application.Snapshot, error)
}

type BudgetHandler struct {
	service        BudgetServiceInterface
	reconciliation ReconciliationServiceInterface
	logger         *logrus.Logger
	respondJSON    func(w http.ResponseWriter, status int, payload interface{})
	respondError   func(w http.ResponseWriter, status int, message string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	reconciliation ReconciliationServiceInterface,
	logger *logrus.Logger,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *BudgetHandler {
	if service == nil || reconciliation == nil || logger == nil || respondJSON == nil || respondError == nil {
		panic("Service, logger and response functions must not be nil")
	}
	return &BudgetHandler{
		service:        service,
		reconciliation: reconciliation,
		logger:         logger,
		respondJSON:    respondJSON,
		respondError:   respondError,
	}
}

// monthParam resolves the optional ?month query parameter, defaulting to the
// current month. The empty string return signals an already-answered request.
func (h *BudgetHandler) monthParam(w http.ResponseWriter, r *http.Request) string {
	month := r.URL.Query().Get("month")
	if month == "" {
		return domain.CurrentMonthKey()
	}
	if !domain.ValidMonthKey(month) {
		h.respondError(w, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
		return ""
	}
	return month
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	month := h.monthParam(w, r)
	if month == "" {
		return
	}

	budget, err := h.service.GetBudget(userID, month)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to retrieve budget")
		return
	}

	// data is null when no budget has been set, which is a different state
	// than a budget of zero.
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget retrieved successfully.",
		"data":    budget,
	})
}

func (h *BudgetHandler) SaveBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Amount *float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == nil {
		h.respondError(w, http.StatusBadRequest, "Amount is required")
		return
	}

	budget, err := h.service.UpsertBudget(userID, domain.CurrentMonthKey(), *req.Amount)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to save budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget saved successfully.",
		"data":    budget,
	})
}

func (h *BudgetHandler) GetBudgetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	month := h.monthParam(w, r)
	if month == "" {
		return
	}

	snapshot, err := h.reconciliation.Reconcile(userID, month)
	if err != nil {
		respondServiceError(h.logger, h.respondError, w, err, "Failed to compute budget summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget summary computed successfully.",
		"data":    snapshot,
	})
}
