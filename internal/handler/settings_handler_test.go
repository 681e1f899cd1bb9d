package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
)

func TestGetSettings(t *testing.T) {
	store := newTestStore(t)
	handler := NewSettingsHandler(service.NewSettingsService(store))

	c, rec := newContext(t, http.MethodGet, "/api/v1/settings", "")

	if err := handler.GetSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response domain.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Currency != "INR" {
		t.Errorf("Expected currency 'INR', got %s", response.Currency)
	}
	if !response.MonthlyBudget.Equal(decimalFromInt(25000)) {
		t.Errorf("Expected monthly budget 25000, got %s", response.MonthlyBudget)
	}
}

func TestUpdateSettings_Success(t *testing.T) {
	store := newTestStore(t)
	handler := NewSettingsHandler(service.NewSettingsService(store))

	reqBody := `{"theme": "dark", "currency": "usd", "monthlyBudget": 1800}`
	c, rec := newContext(t, http.MethodPut, "/api/v1/settings", reqBody)

	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response domain.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Theme != domain.ThemeDark {
		t.Errorf("Expected theme 'dark', got %s", response.Theme)
	}
	if response.Currency != "USD" {
		t.Errorf("Expected currency normalized to 'USD', got %s", response.Currency)
	}
}

func TestUpdateSettings_InvalidTheme(t *testing.T) {
	store := newTestStore(t)
	handler := NewSettingsHandler(service.NewSettingsService(store))

	reqBody := `{"theme": "neon", "currency": "INR", "monthlyBudget": 1800}`
	c, rec := newContext(t, http.MethodPut, "/api/v1/settings", reqBody)

	if err := handler.UpdateSettings(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "theme" {
		t.Errorf("Expected one field error on 'theme', got %+v", problem.Errors)
	}
}
