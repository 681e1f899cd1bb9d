package service

import (
	"errors"
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func TestExpenseCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)

	exp, err := svc.Create(ExpenseInput{
		Date: "2025-10-12", Amount: decimal.NewFromInt(450),
		Category: " Food ", Mode: "UPI", Note: "Dinner",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.ID == "" {
		t.Error("expected generated ID")
	}
	if exp.Category != "Food" {
		t.Errorf("category = %q, want trimmed %q", exp.Category, "Food")
	}
	if len(store.Snapshot().Expenses) != 5 {
		t.Error("expense not committed")
	}
}

func TestExpenseCreate_Validation(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)

	tests := []struct {
		name    string
		input   ExpenseInput
		wantErr error
	}{
		{"bad date", ExpenseInput{Date: "12-10-2025", Amount: decimal.NewFromInt(10), Category: "Food", Mode: "Cash"}, domain.ErrInvalidDate},
		{"negative amount", ExpenseInput{Date: "2025-10-12", Amount: decimal.NewFromInt(-10), Category: "Food", Mode: "Cash"}, domain.ErrInvalidAmount},
		{"missing category", ExpenseInput{Date: "2025-10-12", Amount: decimal.NewFromInt(10), Category: " ", Mode: "Cash"}, domain.ErrCategoryRequired},
		{"missing mode", ExpenseInput{Date: "2025-10-12", Amount: decimal.NewFromInt(10), Category: "Food", Mode: ""}, domain.ErrModeRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseCreate_ZeroAmountAllowed(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)

	if _, err := svc.Create(ExpenseInput{
		Date: "2025-10-12", Amount: decimal.Zero, Category: "Misc", Mode: "Cash",
	}); err != nil {
		t.Errorf("zero amount should be accepted, got %v", err)
	}
}

func TestExpenseUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)

	updated, err := svc.Update("e1", ExpenseInput{
		Date: "2025-10-02", Amount: decimal.NewFromInt(300), Category: "Food", Mode: "Cash", Note: "Lunch corrected",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("amount = %s, want 300", updated.Amount)
	}

	if _, err := svc.Update("missing", ExpenseInput{
		Date: "2025-10-02", Amount: decimal.NewFromInt(300), Category: "Food", Mode: "Cash",
	}); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Errorf("error = %v, want ErrExpenseNotFound", err)
	}
}

func TestExpenseDelete(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)

	if err := svc.Delete("e1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Snapshot().Expenses) != 3 {
		t.Error("expected expense removed")
	}
	if err := svc.Delete("e1"); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Errorf("error = %v, want ErrExpenseNotFound", err)
	}
}
