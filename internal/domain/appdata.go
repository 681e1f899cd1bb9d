package domain

import "github.com/shopspring/decimal"

type Theme string

const (
	ThemeDreamy Theme = "dreamy"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Valid reports whether the theme is one of the supported values.
func (t Theme) Valid() bool {
	switch t {
	case ThemeDreamy, ThemeLight, ThemeDark:
		return true
	}
	return false
}

type BillRecurrence string

const (
	RecurrenceMonthly BillRecurrence = "monthly"
	RecurrenceOneTime BillRecurrence = "one-time"
)

func (r BillRecurrence) Valid() bool {
	return r == RecurrenceMonthly || r == RecurrenceOneTime
}

type SubscriptionCycle string

const (
	CycleMonthly   SubscriptionCycle = "monthly"
	CycleQuarterly SubscriptionCycle = "quarterly"
	CycleYearly    SubscriptionCycle = "yearly"
)

func (c SubscriptionCycle) Valid() bool {
	switch c {
	case CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	}
	return false
}

type DebtType string

const (
	DebtOwedToMe DebtType = "owed_to_me"
	DebtIOwe     DebtType = "i_owe"
)

func (d DebtType) Valid() bool {
	return d == DebtOwedToMe || d == DebtIOwe
}

// User identifies the single local user. Immutable after seeding.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Settings struct {
	Theme         Theme           `json:"theme"`
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// Income is seed-only data; there is no mutation path for it.
type Income struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

// Expense is a single ledger entry. Dates are civil-date strings
// (YYYY-MM-DD); category and mode are open, user-extensible vocabularies.
type Expense struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Mode     string          `json:"mode"`
	Note     string          `json:"note"`
}

type Goal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
}

type Bill struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
	Recurring BillRecurrence  `json:"recurring"`
}

type Subscription struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Amount  decimal.Decimal   `json:"amount"`
	NextDue string            `json:"nextDue"`
	Cycle   SubscriptionCycle `json:"cycle"`
}

type Debt struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   DebtType        `json:"type"`
	Due    string          `json:"due"`
	Note   string          `json:"note"`
}

// Challenge is a monthly spending cap. The stored Progress field is a
// creation-time snapshot only; live progress is always recomputed from
// the expense ledger.
type Challenge struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Limit    decimal.Decimal `json:"limit"`
	Month    string          `json:"month"`
	Progress decimal.Decimal `json:"progress"`
}

// AppData is the full ledger aggregate persisted as one snapshot blob.
type AppData struct {
	User          User           `json:"user"`
	Settings      Settings       `json:"settings"`
	Income        []Income       `json:"income"`
	Expenses      []Expense      `json:"expenses"`
	Goals         []Goal         `json:"goals"`
	Bills         []Bill         `json:"bills"`
	Subscriptions []Subscription `json:"subscriptions"`
	Debts         []Debt         `json:"debts"`
	Challenges    []Challenge    `json:"challenges"`
	Badges        []string       `json:"badges"`
}

// Clone returns a deep copy of the aggregate so callers can never mutate
// the store's live state through a snapshot.
func (d *AppData) Clone() *AppData {
	c := *d
	c.Income = append([]Income(nil), d.Income...)
	c.Expenses = append([]Expense(nil), d.Expenses...)
	c.Goals = append([]Goal(nil), d.Goals...)
	c.Bills = append([]Bill(nil), d.Bills...)
	c.Subscriptions = append([]Subscription(nil), d.Subscriptions...)
	c.Debts = append([]Debt(nil), d.Debts...)
	c.Challenges = append([]Challenge(nil), d.Challenges...)
	c.Badges = append([]string(nil), d.Badges...)
	return &c
}

// HasBadge reports whether the badge is already in the badge set.
func (d *AppData) HasBadge(badge string) bool {
	for _, b := range d.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// AddBadge appends the badge with set-insert semantics (no duplicates).
func (d *AppData) AddBadge(badge string) {
	if !d.HasBadge(badge) {
		d.Badges = append(d.Badges, badge)
	}
}

// BadgeGoalAchiever is awarded the first time any savings goal completes.
const BadgeGoalAchiever = "goal-achiever"

// SnapshotStore persists the AppData aggregate as a single blob under a
// fixed key. Load returns ErrSnapshotNotFound when nothing has been
// written yet.
type SnapshotStore interface {
	Load() (*AppData, error)
	Save(data *AppData) error
	Clear() error
}
