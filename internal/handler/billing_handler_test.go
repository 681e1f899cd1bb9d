package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/service"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
}

func TestPayBill_MonthlyRollsOver(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewBillingServiceWithClock(store, fixedClock(2025, time.October, 15))
	handler := NewBillingHandler(svc)

	// Fixture bill b1 (Electricity, monthly) is due 2025-10-20
	c, rec := newContext(t, http.MethodPost, "/api/v1/bills/b1/pay", "", "id", "b1")

	if err := handler.PayBill(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response service.PaymentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Bill == nil {
		t.Fatal("Expected bill in payment result")
	}
	if response.Bill.DueDate != "2025-11-20" {
		t.Errorf("Expected due date '2025-11-20', got %s", response.Bill.DueDate)
	}
	if response.Expense.Date != "2025-10-15" {
		t.Errorf("Expected expense date '2025-10-15', got %s", response.Expense.Date)
	}
	if response.Expense.Category != "Bills" {
		t.Errorf("Expected expense category 'Bills', got %s", response.Expense.Category)
	}
}

func TestPayBill_NotFound(t *testing.T) {
	store := newTestStore(t)
	handler := NewBillingHandler(service.NewBillingService(store))

	c, rec := newContext(t, http.MethodPost, "/api/v1/bills/nope/pay", "", "id", "nope")

	if err := handler.PayBill(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestPaySubscription_AdvancesCycle(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewBillingServiceWithClock(store, fixedClock(2025, time.October, 15))
	handler := NewBillingHandler(svc)

	// Fixture subscription s1 (Spotify, quarterly) renews 2025-11-05
	c, rec := newContext(t, http.MethodPost, "/api/v1/subscriptions/s1/pay", "", "id", "s1")

	if err := handler.PaySubscription(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response service.PaymentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Subscription == nil {
		t.Fatal("Expected subscription in payment result")
	}
	if response.Subscription.NextDue != "2026-02-05" {
		t.Errorf("Expected next due '2026-02-05', got %s", response.Subscription.NextDue)
	}
	if response.Expense.Category != "Subscriptions" {
		t.Errorf("Expected expense category 'Subscriptions', got %s", response.Expense.Category)
	}
}

func TestCreateBill_InvalidRecurrence(t *testing.T) {
	store := newTestStore(t)
	handler := NewBillingHandler(service.NewBillingService(store))

	reqBody := `{"name": "Water", "amount": 300, "dueDate": "2025-11-01", "recurring": "weekly"}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/bills", reqBody)

	if err := handler.CreateBill(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "recurring" {
		t.Errorf("Expected one field error on 'recurring', got %+v", problem.Errors)
	}
}

func TestCreateSubscription_Success(t *testing.T) {
	store := newTestStore(t)
	handler := NewBillingHandler(service.NewBillingService(store))

	reqBody := `{"name": "Prime", "amount": 1499, "nextDue": "2026-01-10", "cycle": "yearly"}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/subscriptions", reqBody)

	if err := handler.CreateSubscription(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}
}
