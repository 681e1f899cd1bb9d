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

// DebtHandler handles debt HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// DebtRequest represents the create/update debt request body
type DebtRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Due    string          `json:"due"`
	Note   string          `json:"note"`
}

func (r DebtRequest) toInput() service.DebtInput {
	return service.DebtInput{
		Name:   r.Name,
		Amount: r.Amount,
		Type:   domain.DebtType(r.Type),
		Due:    r.Due,
		Note:   r.Note,
	}
}

// ListDebts handles GET /api/v1/debts
func (h *DebtHandler) ListDebts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.debtService.List())
}

// CreateDebt handles POST /api/v1/debts
func (h *DebtHandler) CreateDebt(c echo.Context) error {
	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	debt, err := h.debtService.Create(req.toInput())
	if err != nil {
		if fieldErrs := debtFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create debt")
		return NewInternalError(c, "Failed to create debt")
	}

	log.Info().Str("debt_id", debt.ID).Str("name", debt.Name).Msg("Debt created")

	return c.JSON(http.StatusCreated, debt)
}

// UpdateDebt handles PUT /api/v1/debts/:id
func (h *DebtHandler) UpdateDebt(c echo.Context) error {
	id := c.Param("id")

	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	debt, err := h.debtService.Update(id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		if fieldErrs := debtFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Str("debt_id", id).Msg("Failed to update debt")
		return NewInternalError(c, "Failed to update debt")
	}

	return c.JSON(http.StatusOK, debt)
}

// DeleteDebt handles DELETE /api/v1/debts/:id
func (h *DebtHandler) DeleteDebt(c echo.Context) error {
	id := c.Param("id")

	if err := h.debtService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		log.Error().Err(err).Str("debt_id", id).Msg("Failed to delete debt")
		return NewInternalError(c, "Failed to delete debt")
	}

	return c.NoContent(http.StatusNoContent)
}

// SettleDebt handles POST /api/v1/debts/:id/settle
// Settling removes the debt from the ledger.
func (h *DebtHandler) SettleDebt(c echo.Context) error {
	id := c.Param("id")

	if err := h.debtService.MarkPaid(id); err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return NewNotFoundError(c, "Debt not found")
		}
		log.Error().Err(err).Str("debt_id", id).Msg("Failed to settle debt")
		return NewInternalError(c, "Failed to settle debt")
	}

	log.Info().Str("debt_id", id).Msg("Debt settled")

	return c.NoContent(http.StatusNoContent)
}

func debtFieldErrors(err error) []ValidationError {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return []ValidationError{{Field: "name", Message: "Name is required"}}
	case errors.Is(err, domain.ErrNameTooLong):
		return []ValidationError{{Field: "name", Message: "Name must be 255 characters or less"}}
	case errors.Is(err, domain.ErrInvalidAmount):
		return []ValidationError{{Field: "amount", Message: "Amount must be a non-negative number"}}
	case errors.Is(err, domain.ErrInvalidDebtType):
		return []ValidationError{{Field: "type", Message: "Type must be one of: owed_to_me, i_owe"}}
	case errors.Is(err, domain.ErrInvalidDate):
		return []ValidationError{{Field: "due", Message: "Date must be in YYYY-MM-DD format"}}
	}
	return nil
}
