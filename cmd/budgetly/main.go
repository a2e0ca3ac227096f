package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mkarwowski/budgetly/internal/auth"
	database "github.com/mkarwowski/budgetly/internal/db"
	"github.com/mkarwowski/budgetly/internal/finance/application"
	"github.com/mkarwowski/budgetly/internal/finance/infrastructure"
	"github.com/mkarwowski/budgetly/internal/finance/interfaces"
	"github.com/mkarwowski/budgetly/internal/logging"
	"github.com/mkarwowski/budgetly/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router         *http.ServeMux
	dbService      *database.DBService
	authHandler    *auth.Handler
	authService    auth.Service
	userHandler    *user.Handler
	expenseHandler *interfaces.ExpenseHandler
	budgetHandler  *interfaces.BudgetHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	expenseHandler *interfaces.ExpenseHandler,
	budgetHandler *interfaces.BudgetHandler,
) *Server {
	return &Server{
		router:         http.NewServeMux(),
		dbService:      dbService,
		authHandler:    authHandler,
		authService:    authService,
		userHandler:    userHandler,
		expenseHandler: expenseHandler,
		budgetHandler:  budgetHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not ready",
			"db":     health,
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	protectedRoutes.Handle("GET /api/protected/profile",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))

	// BUDGET API
	protectedRoutes.Handle("GET /api/protected/budget",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.budgetHandler.GetBudget)))

	protectedRoutes.Handle("POST /api/protected/budget",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.budgetHandler.SaveBudget)))

	protectedRoutes.Handle("GET /api/protected/budget/summary",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.budgetHandler.GetBudgetSummary)))

	// EXPENSE API
	protectedRoutes.Handle("POST /api/protected/expenses",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.CreateExpense)))

	protectedRoutes.Handle("GET /api/protected/expenses",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.ListExpenses)))

	protectedRoutes.Handle("PUT /api/protected/expenses/{expenseID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.UpdateExpense)))

	protectedRoutes.Handle("DELETE /api/protected/expenses/{expenseID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.DeleteExpense)))

	protectedRoutes.Handle("GET /api/protected/expenses/months",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.GetExpenseMonths)))

	protectedRoutes.Handle("GET /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.expenseHandler.GetCategories)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	logger := logging.SetupLogging()

	dbService, err := database.NewDBService()
	if err != nil {
		logger.WithError(err).Fatal("Could not initialize database")
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService, respondJSON, respondError)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, logger, respondJSON, respondError)

	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	budgetService := application.NewBudgetService(budgetRepo)
	reconciliationService := application.NewReconciliationService(budgetService, expenseService, logger)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, reconciliationService, logger, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, expenseHandler, budgetHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := logging.RequestLogger(logger, server.router)
	logger.WithField("port", port).Info("Server starting")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
