package handler

import (
	"net/http"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DataHandler exposes the full ledger snapshot
type DataHandler struct {
	store *ledger.Store
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(store *ledger.Store) *DataHandler {
	return &DataHandler{store: store}
}

// GetSnapshot handles GET /api/v1/data
func (h *DataHandler) GetSnapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// Reset handles POST /api/v1/data/reset
// It discards all user data and restores the starter snapshot.
func (h *DataHandler) Reset(c echo.Context) error {
	data, err := h.store.Reset()
	if err != nil {
		log.Error().Err(err).Msg("Failed to reset ledger")
		return NewInternalError(c, "Failed to reset data")
	}

	log.Info().Msg("Ledger reset to starter snapshot")

	return c.JSON(http.StatusOK, data)
}
