package service

import (
	"strings"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/util"
	"github.com/shopspring/decimal"
)

// DebtService handles informal debt tracking. Settlement is all-or-
// nothing: a settled debt is removed, there is no partial payment.
type DebtService struct {
	store *ledger.Store
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *ledger.Store) *DebtService {
	return &DebtService{store: store}
}

// DebtInput holds the input for creating or updating a debt.
type DebtInput struct {
	Name   string
	Amount decimal.Decimal
	Type   domain.DebtType
	Due    string
	Note   string
}

func (in *DebtInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrNameRequired
	}
	if len(in.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if !in.Type.Valid() {
		return domain.ErrInvalidDebtType
	}
	if _, err := util.ParseDate(in.Due); err != nil {
		return domain.ErrInvalidDate
	}
	return nil
}

// List returns all debts in the current snapshot.
func (s *DebtService) List() []domain.Debt {
	return s.store.Snapshot().Debts
}

// Create adds a new debt.
func (s *DebtService) Create(input DebtInput) (*domain.Debt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	debt := domain.Debt{
		ID:     newID("d"),
		Name:   strings.TrimSpace(input.Name),
		Amount: input.Amount,
		Type:   input.Type,
		Due:    input.Due,
		Note:   strings.TrimSpace(input.Note),
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Debts = append(d.Debts, debt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// Update replaces an existing debt's fields.
func (s *DebtService) Update(id string, input DebtInput) (*domain.Debt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated := domain.Debt{
		ID:     id,
		Name:   strings.TrimSpace(input.Name),
		Amount: input.Amount,
		Type:   input.Type,
		Due:    input.Due,
		Note:   strings.TrimSpace(input.Note),
	}

	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Debts {
			if d.Debts[i].ID == id {
				d.Debts[i] = updated
				return nil
			}
		}
		return domain.ErrDebtNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a debt.
func (s *DebtService) Delete(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Debts {
			if d.Debts[i].ID == id {
				d.Debts = append(d.Debts[:i], d.Debts[i+1:]...)
				return nil
			}
		}
		return domain.ErrDebtNotFound
	})
}

// MarkPaid settles a debt by removing it.
func (s *DebtService) MarkPaid(id string) error {
	return s.Delete(id)
}
