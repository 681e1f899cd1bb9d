package handler

import (
	"errors"
	"net/http"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AssistantHandler handles AI assistant HTTP requests
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// AskRequest represents the assistant question request body
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse represents the assistant answer
type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /api/v1/assistant
// Gateway failures map to distinct statuses so the client can show the
// matching transcript message.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	answer, err := h.assistantService.Ask(c.Request().Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "question", Message: "Question must not be empty"},
			})
		case errors.Is(err, domain.ErrAssistantRateLimited):
			return NewRateLimitError(c, "The assistant is receiving too many requests right now. Please wait a moment and try again.")
		case errors.Is(err, domain.ErrAssistantQuotaExhausted):
			return NewPaymentRequiredError(c, "AI credits are exhausted. Please add credits to continue using the assistant.")
		}
		log.Error().Err(err).Msg("Assistant request failed")
		return NewBadGatewayError(c, "The assistant is unavailable right now. Please try again later.")
	}

	return c.JSON(http.StatusOK, AskResponse{Answer: answer})
}
