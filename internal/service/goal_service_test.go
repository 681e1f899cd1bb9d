package service

import (
	"errors"
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func TestGoalContribute_ClampsAndCompletes(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	// g1: target 10000, saved 7500; contributing 3000 overshoots by 500.
	result, err := svc.Contribute("g1", decimal.NewFromInt(3000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Goal.Saved.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("saved = %s, want clamped 10000", result.Goal.Saved)
	}
	if !result.CompletedNow {
		t.Error("expected completion crossing")
	}
	if !result.BadgeAwarded {
		t.Error("expected goal-achiever badge award")
	}
	if !store.Snapshot().HasBadge(domain.BadgeGoalAchiever) {
		t.Error("badge not persisted")
	}
}

func TestGoalContribute_NoRetriggerAfterCompletion(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	if _, err := svc.Contribute("g1", decimal.NewFromInt(3000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Contribute("g1", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Goal.Saved.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("saved = %s, want to stay 10000", result.Goal.Saved)
	}
	if result.CompletedNow {
		t.Error("completion must not re-trigger")
	}
	if result.BadgeAwarded {
		t.Error("badge must not be re-awarded")
	}
}

func TestGoalContribute_BadgeSetSemantics(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	// Complete two independent goals.
	if _, err := svc.Contribute("g1", decimal.NewFromInt(3000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Contribute("g2", decimal.NewFromInt(50000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, b := range store.Snapshot().Badges {
		if b == domain.BadgeGoalAchiever {
			count++
		}
	}
	if count != 1 {
		t.Errorf("goal-achiever appears %d times, want exactly 1", count)
	}
}

func TestGoalContribute_PartialProgress(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	result, err := svc.Contribute("g2", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Goal.Saved.Equal(decimal.NewFromInt(16000)) {
		t.Errorf("saved = %s, want 16000", result.Goal.Saved)
	}
	if result.CompletedNow {
		t.Error("goal is not complete yet")
	}
}

func TestGoalContribute_RejectsNonPositive(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	for _, amount := range []int64{0, -100} {
		if _, err := svc.Contribute("g1", decimal.NewFromInt(amount)); !errors.Is(err, domain.ErrContributionNotPositive) {
			t.Errorf("Contribute(%d) error = %v, want ErrContributionNotPositive", amount, err)
		}
	}
}

func TestGoalContribute_UnknownGoal(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	if _, err := svc.Contribute("missing", decimal.NewFromInt(100)); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Errorf("error = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalCreate_Validation(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	tests := []struct {
		name    string
		input   GoalInput
		wantErr error
	}{
		{"empty name", GoalInput{Name: "  ", Target: decimal.NewFromInt(100)}, domain.ErrNameRequired},
		{"negative target", GoalInput{Name: "Bike", Target: decimal.NewFromInt(-1)}, domain.ErrInvalidAmount},
		{"negative saved", GoalInput{Name: "Bike", Target: decimal.NewFromInt(100), Saved: decimal.NewFromInt(-5)}, domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoalCRUD(t *testing.T) {
	store := newTestStore(t)
	svc := NewGoalService(store)

	created, err := svc.Create(GoalInput{Name: "New Bike", Target: decimal.NewFromInt(30000)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, GoalInput{Name: "E-Bike", Target: decimal.NewFromInt(45000), Saved: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "E-Bike" {
		t.Errorf("name = %s, want E-Bike", updated.Name)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Errorf("second delete error = %v, want ErrGoalNotFound", err)
	}
}
