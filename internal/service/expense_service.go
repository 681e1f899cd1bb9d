package service

import (
	"strings"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense entry business logic.
type ExpenseService struct {
	store *ledger.Store
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *ledger.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ExpenseInput holds the input for creating or updating an expense.
type ExpenseInput struct {
	Date     string
	Amount   decimal.Decimal
	Category string
	Mode     string
	Note     string
}

func (in *ExpenseInput) validate() error {
	if _, err := util.ParseDate(in.Date); err != nil {
		return domain.ErrInvalidDate
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.ErrCategoryRequired
	}
	if strings.TrimSpace(in.Mode) == "" {
		return domain.ErrModeRequired
	}
	return nil
}

// List returns all expenses in the current snapshot.
func (s *ExpenseService) List() []domain.Expense {
	return s.store.Snapshot().Expenses
}

// Create records a new expense.
func (s *ExpenseService) Create(input ExpenseInput) (*domain.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ID:       newID("e"),
		Date:     input.Date,
		Amount:   input.Amount,
		Category: strings.TrimSpace(input.Category),
		Mode:     strings.TrimSpace(input.Mode),
		Note:     strings.TrimSpace(input.Note),
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Expenses = append(d.Expenses, expense)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update replaces an existing expense's fields.
func (s *ExpenseService) Update(id string, input ExpenseInput) (*domain.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated := domain.Expense{
		ID:       id,
		Date:     input.Date,
		Amount:   input.Amount,
		Category: strings.TrimSpace(input.Category),
		Mode:     strings.TrimSpace(input.Mode),
		Note:     strings.TrimSpace(input.Note),
	}

	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Expenses {
			if d.Expenses[i].ID == id {
				d.Expenses[i] = updated
				return nil
			}
		}
		return domain.ErrExpenseNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an expense.
func (s *ExpenseService) Delete(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Expenses {
			if d.Expenses[i].ID == id {
				d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
				return nil
			}
		}
		return domain.ErrExpenseNotFound
	})
}
