package handler

import (
	"net/http"
	"regexp"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the derived dashboard views
type DashboardHandler struct {
	store          *ledger.Store
	metricsService *service.MetricsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(store *ledger.Store, metricsService *service.MetricsService) *DashboardHandler {
	return &DashboardHandler{store: store, metricsService: metricsService}
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.metricsService.Summary(h.store.Snapshot())
	return c.JSON(http.StatusOK, summary)
}

// GetCategories handles GET /api/v1/dashboard/categories
// The optional ?month=YYYY-MM query narrows the breakdown to one
// calendar month; by default all expenses are included.
func (h *DashboardHandler) GetCategories(c echo.Context) error {
	month := c.QueryParam("month")
	if month != "" && !monthPattern.MatchString(month) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "month", Message: "Month must be in YYYY-MM format"},
		})
	}

	data := h.store.Snapshot()
	breakdown := h.metricsService.CategoryBreakdown(data.Expenses, month)
	return c.JSON(http.StatusOK, breakdown)
}

// GetTrend handles GET /api/v1/dashboard/trend
func (h *DashboardHandler) GetTrend(c echo.Context) error {
	trend := h.metricsService.MonthlyTrend(h.store.Snapshot())
	return c.JSON(http.StatusOK, trend)
}

// GetUpcoming handles GET /api/v1/dashboard/upcoming
func (h *DashboardHandler) GetUpcoming(c echo.Context) error {
	upcoming := h.metricsService.Upcoming(h.store.Snapshot())
	return c.JSON(http.StatusOK, upcoming)
}
