package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
)

func newDashboardHandler(t *testing.T) *DashboardHandler {
	t.Helper()
	store := newTestStore(t)
	metrics := service.NewMetricsServiceWithClock(fixedClock(2025, time.October, 15))
	return NewDashboardHandler(store, metrics)
}

func TestGetSummary(t *testing.T) {
	handler := newDashboardHandler(t)

	c, rec := newContext(t, http.MethodGet, "/api/v1/dashboard/summary", "")

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response domain.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !response.TotalIncome.Equal(decimalFromInt(28000)) {
		t.Errorf("Expected total income 28000, got %s", response.TotalIncome)
	}
	if !response.TotalExpense.Equal(decimalFromInt(5539)) {
		t.Errorf("Expected total expense 5539, got %s", response.TotalExpense)
	}
	if !response.NetBalance.Equal(decimalFromInt(22461)) {
		t.Errorf("Expected net balance 22461, got %s", response.NetBalance)
	}
}

func TestGetCategories_InvalidMonth(t *testing.T) {
	handler := newDashboardHandler(t)

	c, rec := newContext(t, http.MethodGet, "/api/v1/dashboard/categories?month=Oct-2025", "")

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetCategories_MonthFilter(t *testing.T) {
	handler := newDashboardHandler(t)

	c, rec := newContext(t, http.MethodGet, "/api/v1/dashboard/categories?month=2025-10", "")

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.CategoryTotal
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	var sum int64
	for _, ct := range response {
		sum += ct.Amount.IntPart()
	}
	if sum != 5539 {
		t.Errorf("Expected category totals to sum to 5539, got %d", sum)
	}
}

func TestGetTrend(t *testing.T) {
	handler := newDashboardHandler(t)

	c, rec := newContext(t, http.MethodGet, "/api/v1/dashboard/trend", "")

	if err := handler.GetTrend(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []domain.MonthPoint
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != service.TrendMonths {
		t.Errorf("Expected %d trend points, got %d", service.TrendMonths, len(response))
	}
	if response[len(response)-1].Month != "2025-10" {
		t.Errorf("Expected last point '2025-10', got %s", response[len(response)-1].Month)
	}
}

func TestGetUpcoming(t *testing.T) {
	handler := newDashboardHandler(t)

	c, rec := newContext(t, http.MethodGet, "/api/v1/dashboard/upcoming", "")

	if err := handler.GetUpcoming(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []domain.UpcomingItem
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != service.UpcomingLimit {
		t.Errorf("Expected %d upcoming items, got %d", service.UpcomingLimit, len(response))
	}
	for i := 1; i < len(response); i++ {
		if response[i-1].Due > response[i].Due {
			t.Errorf("Expected upcoming items sorted by due date, got %s before %s", response[i-1].Due, response[i].Due)
		}
	}
}
