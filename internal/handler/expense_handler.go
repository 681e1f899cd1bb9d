package handler

import (
	"errors"
	"net/http"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the create/update expense request body
type ExpenseRequest struct {
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Mode     string          `json:"mode"`
	Note     string          `json:"note"`
}

func (r ExpenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Date:     r.Date,
		Amount:   r.Amount,
		Category: r.Category,
		Mode:     r.Mode,
		Note:     r.Note,
	}
}

// ListExpenses handles GET /api/v1/expenses
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.expenseService.List())
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.Create(req.toInput())
	if err != nil {
		if fieldErrs := expenseFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("expense_id", expense.ID).Str("category", expense.Category).Msg("Expense created")

	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id := c.Param("id")

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.Update(id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		if fieldErrs := expenseFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Str("expense_id", id).Msg("Failed to update expense")
		return NewInternalError(c, "Failed to update expense")
	}

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id := c.Param("id")

	if err := h.expenseService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("expense_id", id).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	return c.NoContent(http.StatusNoContent)
}

func expenseFieldErrors(err error) []ValidationError {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return []ValidationError{{Field: "date", Message: "Date must be in YYYY-MM-DD format"}}
	case errors.Is(err, domain.ErrInvalidAmount):
		return []ValidationError{{Field: "amount", Message: "Amount must be a non-negative number"}}
	case errors.Is(err, domain.ErrCategoryRequired):
		return []ValidationError{{Field: "category", Message: "Category is required"}}
	case errors.Is(err, domain.ErrModeRequired):
		return []ValidationError{{Field: "mode", Message: "Payment mode is required"}}
	}
	return nil
}
