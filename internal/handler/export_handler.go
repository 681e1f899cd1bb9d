package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/repository/storage"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler serves CSV exports and off-site backups
type ExportHandler struct {
	exportService *service.ExportService
	store         *ledger.Store
	backups       storage.BackupRepository // nil when backup storage is not configured
	now           func() time.Time
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService, store *ledger.Store, backups storage.BackupRepository) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		store:         store,
		backups:       backups,
		now:           time.Now,
	}
}

// BackupResponse represents the result of an off-site backup
type BackupResponse struct {
	Key        string `json:"key"`
	UploadedAt string `json:"uploadedAt"`
}

func serveCSV(c echo.Context, export *service.Export) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return c.Blob(http.StatusOK, "text/csv", export.Content)
}

// ExportExpenses handles GET /api/v1/export/expenses
func (h *ExportHandler) ExportExpenses(c echo.Context) error {
	export, err := h.exportService.Expenses()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export expenses")
		return NewInternalError(c, "Failed to export expenses")
	}
	return serveCSV(c, export)
}

// ExportGoals handles GET /api/v1/export/goals
func (h *ExportHandler) ExportGoals(c echo.Context) error {
	export, err := h.exportService.Goals()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export goals")
		return NewInternalError(c, "Failed to export goals")
	}
	return serveCSV(c, export)
}

// ExportBills handles GET /api/v1/export/bills
func (h *ExportHandler) ExportBills(c echo.Context) error {
	export, err := h.exportService.BillsAndSubscriptions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export bills")
		return NewInternalError(c, "Failed to export bills")
	}
	return serveCSV(c, export)
}

// Backup handles POST /api/v1/export/backup
// It uploads the full ledger snapshot as JSON to the configured bucket.
func (h *ExportHandler) Backup(c echo.Context) error {
	if h.backups == nil {
		return NewUnavailableError(c, "Backup storage is not configured")
	}

	data := h.store.Snapshot()
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode backup")
		return NewInternalError(c, "Failed to create backup")
	}

	uploadedAt := h.now().UTC()
	key := fmt.Sprintf("backups/pfs-data-%s.json", uploadedAt.Format("20060102-150405"))

	if _, err := h.backups.Upload(c.Request().Context(), key, raw, "application/json"); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload backup")
		return NewInternalError(c, "Failed to upload backup")
	}

	log.Info().Str("key", key).Int("bytes", len(raw)).Msg("Backup uploaded")

	return c.JSON(http.StatusCreated, BackupResponse{
		Key:        key,
		UploadedAt: uploadedAt.Format(time.RFC3339),
	})
}
