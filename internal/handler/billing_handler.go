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

// BillingHandler handles bill and subscription HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// BillRequest represents the create/update bill request body
type BillRequest struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
	Recurring string          `json:"recurring"`
}

// SubscriptionRequest represents the create/update subscription request body
type SubscriptionRequest struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	NextDue string          `json:"nextDue"`
	Cycle   string          `json:"cycle"`
}

func (r BillRequest) toInput() service.BillInput {
	return service.BillInput{
		Name:      r.Name,
		Amount:    r.Amount,
		DueDate:   r.DueDate,
		Recurring: domain.BillRecurrence(r.Recurring),
	}
}

func (r SubscriptionRequest) toInput() service.SubscriptionInput {
	return service.SubscriptionInput{
		Name:    r.Name,
		Amount:  r.Amount,
		NextDue: r.NextDue,
		Cycle:   domain.SubscriptionCycle(r.Cycle),
	}
}

// ListBills handles GET /api/v1/bills
func (h *BillingHandler) ListBills(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.ListBills())
}

// CreateBill handles POST /api/v1/bills
func (h *BillingHandler) CreateBill(c echo.Context) error {
	var req BillRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	bill, err := h.billingService.CreateBill(req.toInput())
	if err != nil {
		if fieldErrs := billingFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create bill")
		return NewInternalError(c, "Failed to create bill")
	}

	log.Info().Str("bill_id", bill.ID).Str("name", bill.Name).Msg("Bill created")

	return c.JSON(http.StatusCreated, bill)
}

// UpdateBill handles PUT /api/v1/bills/:id
func (h *BillingHandler) UpdateBill(c echo.Context) error {
	id := c.Param("id")

	var req BillRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	bill, err := h.billingService.UpdateBill(id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrBillNotFound) {
			return NewNotFoundError(c, "Bill not found")
		}
		if fieldErrs := billingFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Str("bill_id", id).Msg("Failed to update bill")
		return NewInternalError(c, "Failed to update bill")
	}

	return c.JSON(http.StatusOK, bill)
}

// DeleteBill handles DELETE /api/v1/bills/:id
func (h *BillingHandler) DeleteBill(c echo.Context) error {
	id := c.Param("id")

	if err := h.billingService.DeleteBill(id); err != nil {
		if errors.Is(err, domain.ErrBillNotFound) {
			return NewNotFoundError(c, "Bill not found")
		}
		log.Error().Err(err).Str("bill_id", id).Msg("Failed to delete bill")
		return NewInternalError(c, "Failed to delete bill")
	}

	return c.NoContent(http.StatusNoContent)
}

// PayBill handles POST /api/v1/bills/:id/pay
func (h *BillingHandler) PayBill(c echo.Context) error {
	id := c.Param("id")

	result, err := h.billingService.MarkBillPaid(id)
	if err != nil {
		if errors.Is(err, domain.ErrBillNotFound) {
			return NewNotFoundError(c, "Bill not found")
		}
		log.Error().Err(err).Str("bill_id", id).Msg("Failed to pay bill")
		return NewInternalError(c, "Failed to pay bill")
	}

	log.Info().
		Str("bill_id", id).
		Str("amount", result.Expense.Amount.String()).
		Str("next_due", result.Bill.DueDate).
		Msg("Bill paid")

	return c.JSON(http.StatusOK, result)
}

// ListSubscriptions handles GET /api/v1/subscriptions
func (h *BillingHandler) ListSubscriptions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.ListSubscriptions())
}

// CreateSubscription handles POST /api/v1/subscriptions
func (h *BillingHandler) CreateSubscription(c echo.Context) error {
	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	sub, err := h.billingService.CreateSubscription(req.toInput())
	if err != nil {
		if fieldErrs := billingFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create subscription")
		return NewInternalError(c, "Failed to create subscription")
	}

	log.Info().Str("subscription_id", sub.ID).Str("name", sub.Name).Msg("Subscription created")

	return c.JSON(http.StatusCreated, sub)
}

// UpdateSubscription handles PUT /api/v1/subscriptions/:id
func (h *BillingHandler) UpdateSubscription(c echo.Context) error {
	id := c.Param("id")

	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	sub, err := h.billingService.UpdateSubscription(id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return NewNotFoundError(c, "Subscription not found")
		}
		if fieldErrs := billingFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Str("subscription_id", id).Msg("Failed to update subscription")
		return NewInternalError(c, "Failed to update subscription")
	}

	return c.JSON(http.StatusOK, sub)
}

// DeleteSubscription handles DELETE /api/v1/subscriptions/:id
func (h *BillingHandler) DeleteSubscription(c echo.Context) error {
	id := c.Param("id")

	if err := h.billingService.DeleteSubscription(id); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return NewNotFoundError(c, "Subscription not found")
		}
		log.Error().Err(err).Str("subscription_id", id).Msg("Failed to delete subscription")
		return NewInternalError(c, "Failed to delete subscription")
	}

	return c.NoContent(http.StatusNoContent)
}

// PaySubscription handles POST /api/v1/subscriptions/:id/pay
func (h *BillingHandler) PaySubscription(c echo.Context) error {
	id := c.Param("id")

	result, err := h.billingService.MarkSubscriptionPaid(id)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return NewNotFoundError(c, "Subscription not found")
		}
		log.Error().Err(err).Str("subscription_id", id).Msg("Failed to pay subscription")
		return NewInternalError(c, "Failed to pay subscription")
	}

	log.Info().
		Str("subscription_id", id).
		Str("amount", result.Expense.Amount.String()).
		Str("next_due", result.Subscription.NextDue).
		Msg("Subscription paid")

	return c.JSON(http.StatusOK, result)
}

func billingFieldErrors(err error) []ValidationError {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return []ValidationError{{Field: "name", Message: "Name is required"}}
	case errors.Is(err, domain.ErrNameTooLong):
		return []ValidationError{{Field: "name", Message: "Name must be 255 characters or less"}}
	case errors.Is(err, domain.ErrInvalidAmount):
		return []ValidationError{{Field: "amount", Message: "Amount must be a non-negative number"}}
	case errors.Is(err, domain.ErrInvalidDate):
		return []ValidationError{{Field: "dueDate", Message: "Date must be in YYYY-MM-DD format"}}
	case errors.Is(err, domain.ErrInvalidRecurrence):
		return []ValidationError{{Field: "recurring", Message: "Recurring must be one of: monthly, one-time"}}
	case errors.Is(err, domain.ErrInvalidCycle):
		return []ValidationError{{Field: "cycle", Message: "Cycle must be one of: monthly, quarterly, yearly"}}
	}
	return nil
}
