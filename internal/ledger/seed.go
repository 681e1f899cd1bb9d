package ledger

import (
	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Seed returns the initial demo snapshot written on first run and on
// reset.
func Seed() *domain.AppData {
	return &domain.AppData{
		User: domain.User{ID: "u1", Name: "Abhishek", Email: "abhishek@example.com"},
		Settings: domain.Settings{
			Theme:         domain.ThemeDreamy,
			Currency:      "INR",
			MonthlyBudget: decimal.NewFromInt(25000),
		},
		Income: []domain.Income{
			{ID: "inc1", Source: "Pocket Money", Amount: decimal.NewFromInt(20000), Date: "2025-09-01"},
			{ID: "inc2", Source: "Freelance App", Amount: decimal.NewFromInt(8000), Date: "2025-09-15"},
		},
		Expenses: []domain.Expense{
			{ID: "e1", Date: "2025-10-02", Amount: decimal.NewFromInt(240), Category: "Food", Mode: "UPI", Note: "Lunch Zomato"},
			{ID: "e2", Date: "2025-10-04", Amount: decimal.NewFromInt(1200), Category: "Transport", Mode: "Card", Note: "Monthly pass"},
			{ID: "e3", Date: "2025-10-07", Amount: decimal.NewFromInt(599), Category: "Subscriptions", Mode: "Card", Note: "Netflix"},
			{ID: "e4", Date: "2025-10-10", Amount: decimal.NewFromInt(3500), Category: "Shopping", Mode: "Card", Note: "Shoes"},
		},
		Goals: []domain.Goal{
			{ID: "g1", Name: "Trip to Goa", Target: decimal.NewFromInt(10000), Saved: decimal.NewFromInt(7500)},
			{ID: "g2", Name: "New Laptop", Target: decimal.NewFromInt(60000), Saved: decimal.NewFromInt(15000)},
		},
		Bills: []domain.Bill{
			{ID: "b1", Name: "Electricity", Amount: decimal.NewFromInt(1800), DueDate: "2025-10-20", Recurring: domain.RecurrenceMonthly},
			{ID: "b2", Name: "WiFi", Amount: decimal.NewFromInt(699), DueDate: "2025-10-18", Recurring: domain.RecurrenceMonthly},
		},
		Subscriptions: []domain.Subscription{
			{ID: "s1", Name: "Spotify", Amount: decimal.NewFromInt(99), NextDue: "2025-11-05", Cycle: domain.CycleMonthly},
			{ID: "s2", Name: "Netflix", Amount: decimal.NewFromInt(599), NextDue: "2025-11-25", Cycle: domain.CycleMonthly},
		},
		Debts: []domain.Debt{
			{ID: "d1", Name: "Rohit", Amount: decimal.NewFromInt(1200), Type: domain.DebtOwedToMe, Due: "2025-11-01", Note: "Dinner"},
			{ID: "d2", Name: "Sara", Amount: decimal.NewFromInt(500), Type: domain.DebtIOwe, Due: "2025-10-30", Note: "Movie"},
		},
		Challenges: []domain.Challenge{
			{ID: "c1", Name: "Under ₹5000 Oct", Limit: decimal.NewFromInt(5000), Month: "2025-10", Progress: decimal.NewFromInt(3800)},
		},
		Badges: []string{"first-saver"},
	}
}
