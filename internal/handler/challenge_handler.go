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

// ChallengeHandler handles spending challenge HTTP requests
type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// ChallengeRequest represents the create challenge request body
type ChallengeRequest struct {
	Name  string          `json:"name"`
	Limit decimal.Decimal `json:"limit"`
	Month string          `json:"month"`
}

// ListChallenges handles GET /api/v1/challenges
// Each challenge is returned with its live progress recomputed from the
// expense ledger.
func (h *ChallengeHandler) ListChallenges(c echo.Context) error {
	return c.JSON(http.StatusOK, h.challengeService.List())
}

// CreateChallenge handles POST /api/v1/challenges
func (h *ChallengeHandler) CreateChallenge(c echo.Context) error {
	var req ChallengeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	status, err := h.challengeService.Create(service.ChallengeInput{Name: req.Name, Limit: req.Limit, Month: req.Month})
	if err != nil {
		if fieldErrs := challengeFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create challenge")
		return NewInternalError(c, "Failed to create challenge")
	}

	log.Info().Str("challenge_id", status.ID).Str("month", status.Month).Msg("Challenge created")

	return c.JSON(http.StatusCreated, status)
}

// DeleteChallenge handles DELETE /api/v1/challenges/:id
func (h *ChallengeHandler) DeleteChallenge(c echo.Context) error {
	id := c.Param("id")

	if err := h.challengeService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			return NewNotFoundError(c, "Challenge not found")
		}
		log.Error().Err(err).Str("challenge_id", id).Msg("Failed to delete challenge")
		return NewInternalError(c, "Failed to delete challenge")
	}

	return c.NoContent(http.StatusNoContent)
}

func challengeFieldErrors(err error) []ValidationError {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return []ValidationError{{Field: "name", Message: "Name is required"}}
	case errors.Is(err, domain.ErrNameTooLong):
		return []ValidationError{{Field: "name", Message: "Name must be 255 characters or less"}}
	case errors.Is(err, domain.ErrInvalidAmount):
		return []ValidationError{{Field: "limit", Message: "Limit must be a non-negative number"}}
	case errors.Is(err, domain.ErrInvalidMonth):
		return []ValidationError{{Field: "month", Message: "Month must be in YYYY-MM format"}}
	}
	return nil
}
