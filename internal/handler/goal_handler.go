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

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents the create/update goal request body
type GoalRequest struct {
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
}

// ContributeRequest represents the contribution request body
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ListGoals handles GET /api/v1/goals
func (h *GoalHandler) ListGoals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.goalService.List())
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	goal, err := h.goalService.Create(service.GoalInput{Name: req.Name, Target: req.Target, Saved: req.Saved})
	if err != nil {
		if fieldErrs := goalFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Msg("Failed to create goal")
		return NewInternalError(c, "Failed to create goal")
	}

	log.Info().Str("goal_id", goal.ID).Str("name", goal.Name).Msg("Goal created")

	return c.JSON(http.StatusCreated, goal)
}

// UpdateGoal handles PUT /api/v1/goals/:id
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id := c.Param("id")

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	goal, err := h.goalService.Update(id, service.GoalInput{Name: req.Name, Target: req.Target, Saved: req.Saved})
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if fieldErrs := goalFieldErrors(err); fieldErrs != nil {
			return NewValidationError(c, "Validation failed", fieldErrs)
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to update goal")
		return NewInternalError(c, "Failed to update goal")
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id := c.Param("id")

	if err := h.goalService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}

	return c.NoContent(http.StatusNoContent)
}

// Contribute handles POST /api/v1/goals/:id/contribute
func (h *GoalHandler) Contribute(c echo.Context) error {
	id := c.Param("id")

	var req ContributeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.goalService.Contribute(id, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if errors.Is(err, domain.ErrContributionNotPositive) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Contribution must be a positive amount"},
			})
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to contribute to goal")
		return NewInternalError(c, "Failed to contribute to goal")
	}

	if result.CompletedNow {
		log.Info().Str("goal_id", id).Bool("badge_awarded", result.BadgeAwarded).Msg("Goal completed")
	}

	return c.JSON(http.StatusOK, result)
}

func goalFieldErrors(err error) []ValidationError {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return []ValidationError{{Field: "name", Message: "Name is required"}}
	case errors.Is(err, domain.ErrNameTooLong):
		return []ValidationError{{Field: "name", Message: "Name must be 255 characters or less"}}
	case errors.Is(err, domain.ErrInvalidAmount):
		return []ValidationError{{Field: "target", Message: "Target must be a non-negative number"}}
	}
	return nil
}
