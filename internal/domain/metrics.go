package domain

import "github.com/shopspring/decimal"

// Summary contains the headline dashboard numbers. BudgetRemaining may go
// negative, which the UI treats as "budget exceeded".
type Summary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	MonthlyBudget   decimal.Decimal `json:"monthlyBudget"`
	BudgetRemaining decimal.Decimal `json:"budgetRemaining"`

	// Current calendar month slice
	MonthIncome    decimal.Decimal `json:"monthIncome"`
	MonthSpent     decimal.Decimal `json:"monthSpent"`
	MonthRemaining decimal.Decimal `json:"monthRemaining"`
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthPoint is one point of the trailing monthly trend series.
type MonthPoint struct {
	Month    string          `json:"month"` // YYYY-MM
	Label    string          `json:"label"` // short month name, e.g. "Oct"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

type UpcomingKind string

const (
	UpcomingBill         UpcomingKind = "bill"
	UpcomingSubscription UpcomingKind = "subscription"
)

// UpcomingItem is a bill or subscription surfaced on the dashboard.
type UpcomingItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Due       string          `json:"due"`
	Kind      UpcomingKind    `json:"kind"`
	DaysUntil int             `json:"daysUntil"`
}

// ChallengeStatus is the live view of a challenge. ActualProgress is
// always recomputed from the expense ledger; Progress is the display
// percentage clamped to [0,100].
type ChallengeStatus struct {
	Challenge
	ActualProgress decimal.Decimal `json:"actualProgress"`
	ProgressPct    int             `json:"progressPct"`
	Remaining      decimal.Decimal `json:"remaining"`
	IsSuccess      bool            `json:"isSuccess"`
}

// DebtTotals splits open debts by direction.
type DebtTotals struct {
	TotalIOwe     decimal.Decimal `json:"totalIOwe"`
	TotalOwedToMe decimal.Decimal `json:"totalOwedToMe"`
}
