package service

import (
	"strings"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ChallengeService handles monthly spending challenges. Live progress is
// always computed from the expense ledger; the stored progress field is
// a creation-time snapshot only. No badge is awarded on challenge
// success -- only goal completion awards badges.
type ChallengeService struct {
	store   *ledger.Store
	metrics *MetricsService
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(store *ledger.Store, metrics *MetricsService) *ChallengeService {
	return &ChallengeService{store: store, metrics: metrics}
}

// ChallengeInput holds the input for creating a challenge.
type ChallengeInput struct {
	Name  string
	Limit decimal.Decimal
	Month string // YYYY-MM
}

func (in *ChallengeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrNameRequired
	}
	if len(in.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if in.Limit.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if _, err := time.Parse(util.MonthLayout, in.Month); err != nil {
		return domain.ErrInvalidMonth
	}
	return nil
}

// List returns live statuses for all challenges.
func (s *ChallengeService) List() []domain.ChallengeStatus {
	return s.metrics.ChallengeStatuses(s.store.Snapshot())
}

// Create adds a new challenge. The stored progress field starts at the
// month's current spend so the record mirrors what the user saw at
// creation time.
func (s *ChallengeService) Create(input ChallengeInput) (*domain.ChallengeStatus, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	challenge := domain.Challenge{
		ID:    newID("c"),
		Name:  strings.TrimSpace(input.Name),
		Limit: input.Limit,
		Month: input.Month,
	}

	var status domain.ChallengeStatus
	err := s.store.Update(func(d *domain.AppData) error {
		status = s.metrics.ChallengeStatus(d, challenge)
		challenge.Progress = status.ActualProgress
		status.Progress = challenge.Progress
		d.Challenges = append(d.Challenges, challenge)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Delete removes a challenge.
func (s *ChallengeService) Delete(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Challenges {
			if d.Challenges[i].ID == id {
				d.Challenges = append(d.Challenges[:i], d.Challenges[i+1:]...)
				return nil
			}
		}
		return domain.ErrChallengeNotFound
	})
}
