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

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest represents the update settings request body
type SettingsRequest struct {
	Theme         string          `json:"theme"`
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settingsService.Get())
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	settings, err := h.settingsService.Update(service.SettingsInput{
		Theme:         domain.Theme(req.Theme),
		Currency:      req.Currency,
		MonthlyBudget: req.MonthlyBudget,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTheme):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "theme", Message: "Theme must be one of: dreamy, light, dark"},
			})
		case errors.Is(err, domain.ErrInvalidCurrency):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Currency code is required"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "monthlyBudget", Message: "Monthly budget must be a non-negative number"},
			})
		}
		log.Error().Err(err).Msg("Failed to update settings")
		return NewInternalError(c, "Failed to update settings")
	}

	return c.JSON(http.StatusOK, settings)
}
