package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/util"
	"github.com/shopspring/decimal"
)

// DefaultPaymentMode is the mode stamped on expenses synthesized by
// payment rollovers.
const DefaultPaymentMode = "Card"

// BillingService handles bills and subscriptions, including the payment
// rollover that appends an expense and advances the next due date.
type BillingService struct {
	store *ledger.Store
	now   func() time.Time
}

// NewBillingService creates a new BillingService.
func NewBillingService(store *ledger.Store) *BillingService {
	return &BillingService{store: store, now: time.Now}
}

// NewBillingServiceWithClock creates a BillingService with a fixed clock
// for tests.
func NewBillingServiceWithClock(store *ledger.Store, now func() time.Time) *BillingService {
	return &BillingService{store: store, now: now}
}

// BillInput holds the input for creating or updating a bill.
type BillInput struct {
	Name      string
	Amount    decimal.Decimal
	DueDate   string
	Recurring domain.BillRecurrence
}

func (in *BillInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrNameRequired
	}
	if len(in.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if _, err := util.ParseDate(in.DueDate); err != nil {
		return domain.ErrInvalidDate
	}
	if !in.Recurring.Valid() {
		return domain.ErrInvalidRecurrence
	}
	return nil
}

// SubscriptionInput holds the input for creating or updating a
// subscription.
type SubscriptionInput struct {
	Name    string
	Amount  decimal.Decimal
	NextDue string
	Cycle   domain.SubscriptionCycle
}

func (in *SubscriptionInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrNameRequired
	}
	if len(in.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if in.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if _, err := util.ParseDate(in.NextDue); err != nil {
		return domain.ErrInvalidDate
	}
	if !in.Cycle.Valid() {
		return domain.ErrInvalidCycle
	}
	return nil
}

// ListBills returns all bills in the current snapshot.
func (s *BillingService) ListBills() []domain.Bill {
	return s.store.Snapshot().Bills
}

// ListSubscriptions returns all subscriptions in the current snapshot.
func (s *BillingService) ListSubscriptions() []domain.Subscription {
	return s.store.Snapshot().Subscriptions
}

// CreateBill adds a new bill.
func (s *BillingService) CreateBill(input BillInput) (*domain.Bill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	bill := domain.Bill{
		ID:        newID("b"),
		Name:      strings.TrimSpace(input.Name),
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Recurring: input.Recurring,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Bills = append(d.Bills, bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpdateBill replaces an existing bill's fields.
func (s *BillingService) UpdateBill(id string, input BillInput) (*domain.Bill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated := domain.Bill{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Recurring: input.Recurring,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Bills {
			if d.Bills[i].ID == id {
				d.Bills[i] = updated
				return nil
			}
		}
		return domain.ErrBillNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBill removes a bill.
func (s *BillingService) DeleteBill(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Bills {
			if d.Bills[i].ID == id {
				d.Bills = append(d.Bills[:i], d.Bills[i+1:]...)
				return nil
			}
		}
		return domain.ErrBillNotFound
	})
}

// CreateSubscription adds a new subscription.
func (s *BillingService) CreateSubscription(input SubscriptionInput) (*domain.Subscription, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	sub := domain.Subscription{
		ID:      newID("s"),
		Name:    strings.TrimSpace(input.Name),
		Amount:  input.Amount,
		NextDue: input.NextDue,
		Cycle:   input.Cycle,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		d.Subscriptions = append(d.Subscriptions, sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscription replaces an existing subscription's fields.
func (s *BillingService) UpdateSubscription(id string, input SubscriptionInput) (*domain.Subscription, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated := domain.Subscription{
		ID:      id,
		Name:    strings.TrimSpace(input.Name),
		Amount:  input.Amount,
		NextDue: input.NextDue,
		Cycle:   input.Cycle,
	}

	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Subscriptions {
			if d.Subscriptions[i].ID == id {
				d.Subscriptions[i] = updated
				return nil
			}
		}
		return domain.ErrSubscriptionNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSubscription removes a subscription.
func (s *BillingService) DeleteSubscription(id string) error {
	return s.store.Update(func(d *domain.AppData) error {
		for i := range d.Subscriptions {
			if d.Subscriptions[i].ID == id {
				d.Subscriptions = append(d.Subscriptions[:i], d.Subscriptions[i+1:]...)
				return nil
			}
		}
		return domain.ErrSubscriptionNotFound
	})
}

// PaymentResult carries the rolled-over item and the expense the payment
// synthesized.
type PaymentResult struct {
	Bill         *domain.Bill         `json:"bill,omitempty"`
	Subscription *domain.Subscription `json:"subscription,omitempty"`
	Expense      domain.Expense       `json:"expense"`
}

// MarkBillPaid records a bill payment: it appends exactly one expense
// dated today and, for monthly bills, advances the due date by one
// calendar month (day-of-month clamped). One-time bills keep their due
// date. Paying twice produces two expenses and two rollovers; there is
// no "already paid this period" guard.
func (s *BillingService) MarkBillPaid(id string) (*PaymentResult, error) {
	today := s.now().Format(util.DateLayout)

	var result PaymentResult
	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Bills {
			b := &d.Bills[i]
			if b.ID != id {
				continue
			}

			if b.Recurring == domain.RecurrenceMonthly {
				next, err := util.AddMonthsClamped(b.DueDate, 1)
				if err != nil {
					return fmt.Errorf("advance due date: %w", err)
				}
				b.DueDate = next
			}

			expense := domain.Expense{
				ID:       newID("e"),
				Date:     today,
				Amount:   b.Amount,
				Category: "Bills",
				Mode:     DefaultPaymentMode,
				Note:     b.Name + " payment",
			}
			d.Expenses = append(d.Expenses, expense)

			result.Bill = b
			result.Expense = expense
			return nil
		}
		return domain.ErrBillNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkSubscriptionPaid records a subscription payment: it appends
// exactly one expense dated today and advances nextDue by the cycle step
// from the current nextDue, not from today, so skipped payments roll
// forward deterministically.
func (s *BillingService) MarkSubscriptionPaid(id string) (*PaymentResult, error) {
	today := s.now().Format(util.DateLayout)

	var result PaymentResult
	err := s.store.Update(func(d *domain.AppData) error {
		for i := range d.Subscriptions {
			sub := &d.Subscriptions[i]
			if sub.ID != id {
				continue
			}

			var next string
			var err error
			switch sub.Cycle {
			case domain.CycleMonthly:
				next, err = util.AddMonthsClamped(sub.NextDue, 1)
			case domain.CycleQuarterly:
				next, err = util.AddMonthsClamped(sub.NextDue, 3)
			case domain.CycleYearly:
				next, err = util.AddYearsClamped(sub.NextDue, 1)
			default:
				return domain.ErrInvalidCycle
			}
			if err != nil {
				return fmt.Errorf("advance next due: %w", err)
			}
			sub.NextDue = next

			expense := domain.Expense{
				ID:       newID("e"),
				Date:     today,
				Amount:   sub.Amount,
				Category: "Subscriptions",
				Mode:     DefaultPaymentMode,
				Note:     sub.Name + " subscription",
			}
			d.Expenses = append(d.Expenses, expense)

			result.Subscription = sub
			result.Expense = expense
			return nil
		}
		return domain.ErrSubscriptionNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
