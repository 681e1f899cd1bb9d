package service

import (
	"sort"
	"strings"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/util"
	"github.com/shopspring/decimal"
)

// MetricsService computes display metrics from a ledger snapshot. All
// methods are pure: every call recomputes from the given snapshot, and
// nothing here ever performs I/O.
type MetricsService struct {
	now func() time.Time
}

// NewMetricsService creates a MetricsService using the wall clock.
func NewMetricsService() *MetricsService {
	return &MetricsService{now: time.Now}
}

// NewMetricsServiceWithClock creates a MetricsService with a fixed clock
// for tests.
func NewMetricsServiceWithClock(now func() time.Time) *MetricsService {
	return &MetricsService{now: now}
}

// TrendMonths is the number of trailing months in the monthly series.
const TrendMonths = 6

// UpcomingLimit is how many merged bills/subscriptions the dashboard
// surfaces.
const UpcomingLimit = 3

// Summary computes the headline totals. TotalIncome and TotalExpense sum
// the full collections; the month-scoped figures filter by the current
// YYYY-MM prefix.
func (s *MetricsService) Summary(data *domain.AppData) domain.Summary {
	totalIncome := decimal.Zero
	for _, inc := range data.Income {
		totalIncome = totalIncome.Add(inc.Amount)
	}

	totalExpense := decimal.Zero
	for _, exp := range data.Expenses {
		totalExpense = totalExpense.Add(exp.Amount)
	}

	month := util.MonthPrefix(s.now())
	monthIncome := decimal.Zero
	for _, inc := range data.Income {
		if strings.HasPrefix(inc.Date, month) {
			monthIncome = monthIncome.Add(inc.Amount)
		}
	}
	monthSpent := decimal.Zero
	for _, exp := range data.Expenses {
		if strings.HasPrefix(exp.Date, month) {
			monthSpent = monthSpent.Add(exp.Amount)
		}
	}

	budget := data.Settings.MonthlyBudget
	return domain.Summary{
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		NetBalance:      totalIncome.Sub(totalExpense),
		MonthlyBudget:   budget,
		BudgetRemaining: budget.Sub(totalExpense),
		MonthIncome:     monthIncome,
		MonthSpent:      monthSpent,
		MonthRemaining:  budget.Sub(monthSpent),
	}
}

// CategoryBreakdown groups expenses by category, summing amounts. When
// monthPrefix is non-empty only expenses dated in that YYYY-MM are
// counted. The result is ordered by descending amount; ties keep the
// order in which the category was first encountered.
func (s *MetricsService) CategoryBreakdown(expenses []domain.Expense, monthPrefix string) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	order := make(map[string]int)
	var categories []string

	for _, exp := range expenses {
		if monthPrefix != "" && !strings.HasPrefix(exp.Date, monthPrefix) {
			continue
		}
		if _, seen := totals[exp.Category]; !seen {
			order[exp.Category] = len(categories)
			categories = append(categories, exp.Category)
		}
		totals[exp.Category] = totals[exp.Category].Add(exp.Amount)
	}

	result := make([]domain.CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		result = append(result, domain.CategoryTotal{Category: cat, Amount: totals[cat]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	return result
}

// DaysUntil returns the whole-day difference between the given date and
// today. Malformed dates yield 0 (fail-soft for display widgets).
func (s *MetricsService) DaysUntil(dateStr string) int {
	return util.DaysUntil(dateStr, s.now())
}

var hundred = decimal.NewFromInt(100)

// ProgressPercentage returns round(current/target*100) clamped to
// [0,100]. A zero target yields 0 rather than dividing by zero.
func ProgressPercentage(current, target decimal.Decimal) int {
	if target.IsZero() {
		return 0
	}
	pct := current.Div(target).Mul(hundred).Round(0)
	if pct.LessThan(decimal.Zero) {
		return 0
	}
	if pct.GreaterThan(hundred) {
		return 100
	}
	return int(pct.IntPart())
}

// MonthlyTrend computes income, expenses and savings for each of the
// trailing TrendMonths calendar months including the current one,
// ordered oldest to newest.
func (s *MetricsService) MonthlyTrend(data *domain.AppData) []domain.MonthPoint {
	points := make([]domain.MonthPoint, 0, TrendMonths)
	for _, m := range util.TrailingMonths(s.now(), TrendMonths) {
		prefix := util.MonthPrefix(m)

		income := decimal.Zero
		for _, inc := range data.Income {
			if strings.HasPrefix(inc.Date, prefix) {
				income = income.Add(inc.Amount)
			}
		}
		expenses := decimal.Zero
		for _, exp := range data.Expenses {
			if strings.HasPrefix(exp.Date, prefix) {
				expenses = expenses.Add(exp.Amount)
			}
		}

		points = append(points, domain.MonthPoint{
			Month:    prefix,
			Label:    m.Format("Jan"),
			Income:   income,
			Expenses: expenses,
			Savings:  income.Sub(expenses),
		})
	}
	return points
}

// Upcoming merges bills and subscriptions into one list tagged by kind,
// sorted ascending by due date, and returns the first UpcomingLimit.
func (s *MetricsService) Upcoming(data *domain.AppData) []domain.UpcomingItem {
	items := make([]domain.UpcomingItem, 0, len(data.Bills)+len(data.Subscriptions))
	for _, b := range data.Bills {
		items = append(items, domain.UpcomingItem{
			ID: b.ID, Name: b.Name, Amount: b.Amount, Due: b.DueDate,
			Kind: domain.UpcomingBill, DaysUntil: s.DaysUntil(b.DueDate),
		})
	}
	for _, sub := range data.Subscriptions {
		items = append(items, domain.UpcomingItem{
			ID: sub.ID, Name: sub.Name, Amount: sub.Amount, Due: sub.NextDue,
			Kind: domain.UpcomingSubscription, DaysUntil: s.DaysUntil(sub.NextDue),
		})
	}

	// Civil-date strings sort chronologically as plain strings.
	sort.SliceStable(items, func(i, j int) bool { return items[i].Due < items[j].Due })

	if len(items) > UpcomingLimit {
		items = items[:UpcomingLimit]
	}
	return items
}

// ChallengeStatus recomputes a challenge's live progress from the
// expense ledger. The persisted progress field is never consulted.
func (s *MetricsService) ChallengeStatus(data *domain.AppData, ch domain.Challenge) domain.ChallengeStatus {
	actual := decimal.Zero
	for _, exp := range data.Expenses {
		if strings.HasPrefix(exp.Date, ch.Month) {
			actual = actual.Add(exp.Amount)
		}
	}

	remaining := ch.Limit.Sub(actual)
	if remaining.LessThan(decimal.Zero) {
		remaining = decimal.Zero
	}

	return domain.ChallengeStatus{
		Challenge:      ch,
		ActualProgress: actual,
		ProgressPct:    ProgressPercentage(actual, ch.Limit),
		Remaining:      remaining,
		IsSuccess:      actual.LessThanOrEqual(ch.Limit),
	}
}

// ChallengeStatuses returns live statuses for every challenge.
func (s *MetricsService) ChallengeStatuses(data *domain.AppData) []domain.ChallengeStatus {
	statuses := make([]domain.ChallengeStatus, 0, len(data.Challenges))
	for _, ch := range data.Challenges {
		statuses = append(statuses, s.ChallengeStatus(data, ch))
	}
	return statuses
}

// DebtTotals sums open debts by direction.
func (s *MetricsService) DebtTotals(data *domain.AppData) domain.DebtTotals {
	totals := domain.DebtTotals{TotalIOwe: decimal.Zero, TotalOwedToMe: decimal.Zero}
	for _, d := range data.Debts {
		switch d.Type {
		case domain.DebtIOwe:
			totals.TotalIOwe = totals.TotalIOwe.Add(d.Amount)
		case domain.DebtOwedToMe:
			totals.TotalOwedToMe = totals.TotalOwedToMe.Add(d.Amount)
		}
	}
	return totals
}
