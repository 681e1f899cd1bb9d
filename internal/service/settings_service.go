package service

import (
	"strings"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// SettingsService handles user settings and whole-ledger reset.
type SettingsService struct {
	store *ledger.Store
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store *ledger.Store) *SettingsService {
	return &SettingsService{store: store}
}

// SettingsInput holds the input for updating settings.
type SettingsInput struct {
	Theme         domain.Theme
	Currency      string
	MonthlyBudget decimal.Decimal
}

// Get returns the current settings.
func (s *SettingsService) Get() domain.Settings {
	return s.store.Snapshot().Settings
}

// Update validates and commits new settings.
func (s *SettingsService) Update(input SettingsInput) (*domain.Settings, error) {
	if !input.Theme.Valid() {
		return nil, domain.ErrInvalidTheme
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		return nil, domain.ErrInvalidCurrency
	}
	if input.MonthlyBudget.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	settings := domain.Settings{
		Theme:         input.Theme,
		Currency:      currency,
		MonthlyBudget: input.MonthlyBudget,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Settings = settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
