package service

import (
	"strings"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goal business logic, including the
// contribution flow with completion crossing detection.
type GoalService struct {
	store *ledger.Store
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *ledger.Store) *GoalService {
	return &GoalService{store: store}
}

// GoalInput holds the input for creating or updating a goal.
type GoalInput struct {
	Name   string
	Target decimal.Decimal
	Saved  decimal.Decimal
}

func (in *GoalInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrNameRequired
	}
	if len(in.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if in.Target.IsNegative() || in.Saved.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// List returns all goals in the current snapshot.
func (s *GoalService) List() []domain.Goal {
	return s.store.Snapshot().Goals
}

// Create adds a new savings goal.
func (s *GoalService) Create(input GoalInput) (*domain.Goal, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	goal := domain.Goal{
		ID:     newID("g"),
		Name:   strings.TrimSpace(input.Name),
		Target: input.Target,
		Saved:  input.Saved,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Goals = append(d.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update replaces an existing goal's fields.
func (s *GoalService) Update(id string, input GoalInput) (*domain.Goal, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated := domain.Goal{
		ID:     id,
		Name:   strings.TrimSpace(input.Name),
		Target: input.Target,
		Saved:  input.Saved,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Goals {
			if d.Goals[i].ID == id {
				d.Goals[i] = updated
				return nil
			}
		}
		return domain.ErrGoalNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a goal.
func (s *GoalService) Delete(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Goals {
			if d.Goals[i].ID == id {
				d.Goals = append(d.Goals[:i], d.Goals[i+1:]...)
				return nil
			}
		}
		return domain.ErrGoalNotFound
	})
}

// ContributionResult is the outcome of a goal contribution. CompletedNow
// is true only on the below-target to at-target crossing, so the
// presentation layer can fire its one-time celebration.
type ContributionResult struct {
	Goal         domain.Goal `json:"goal"`
	CompletedNow bool        `json:"completedNow"`
	BadgeAwarded bool        `json:"badgeAwarded"`
}

// Contribute adds amount to a goal's saved balance, clamped to its
// target. On the completion crossing it set-inserts the goal-achiever
// badge; repeated contributions after completion never re-trigger.
func (s *GoalService) Contribute(id string, amount decimal.Decimal) (*ContributionResult, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrContributionNotPositive
	}

	var result ContributionResult
	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Goals {
			g := &d.Goals[i]
			if g.ID != id {
				continue
			}

			newSaved := g.Saved.Add(amount)
			if newSaved.GreaterThan(g.Target) {
				newSaved = g.Target
			}

			completedNow := g.Saved.LessThan(g.Target) && newSaved.GreaterThanOrEqual(g.Target)
			g.Saved = newSaved

			result.CompletedNow = completedNow
			if completedNow && !d.HasBadge(domain.BadgeGoalAchiever) {
				d.AddBadge(domain.BadgeGoalAchiever)
				result.BadgeAwarded = true
			}
			result.Goal = *g
			return nil
		}
		return domain.ErrGoalNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
