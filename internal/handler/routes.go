package handler

import (
	"github.com/abhiraj/finpal/finpal-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, dataHandler *DataHandler, expenseHandler *ExpenseHandler, goalHandler *GoalHandler, billingHandler *BillingHandler, debtHandler *DebtHandler, challengeHandler *ChallengeHandler, settingsHandler *SettingsHandler, dashboardHandler *DashboardHandler, assistantHandler *AssistantHandler, exportHandler *ExportHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Full snapshot routes
	api.GET("/data", dataHandler.GetSnapshot)
	api.POST("/data/reset", dataHandler.Reset)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Goal routes
	goals := api.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contribute", goalHandler.Contribute)

	// Bill routes
	bills := api.Group("/bills")
	bills.GET("", billingHandler.ListBills)
	bills.POST("", billingHandler.CreateBill)
	bills.PUT("/:id", billingHandler.UpdateBill)
	bills.DELETE("/:id", billingHandler.DeleteBill)
	bills.POST("/:id/pay", billingHandler.PayBill)

	// Subscription routes
	subscriptions := api.Group("/subscriptions")
	subscriptions.GET("", billingHandler.ListSubscriptions)
	subscriptions.POST("", billingHandler.CreateSubscription)
	subscriptions.PUT("/:id", billingHandler.UpdateSubscription)
	subscriptions.DELETE("/:id", billingHandler.DeleteSubscription)
	subscriptions.POST("/:id/pay", billingHandler.PaySubscription)

	// Debt routes
	debts := api.Group("/debts")
	debts.GET("", debtHandler.ListDebts)
	debts.POST("", debtHandler.CreateDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/settle", debtHandler.SettleDebt)

	// Challenge routes
	challenges := api.Group("/challenges")
	challenges.GET("", challengeHandler.ListChallenges)
	challenges.POST("", challengeHandler.CreateChallenge)
	challenges.DELETE("/:id", challengeHandler.DeleteChallenge)

	// Settings routes
	settings := api.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/categories", dashboardHandler.GetCategories)
	dashboard.GET("/trend", dashboardHandler.GetTrend)
	dashboard.GET("/upcoming", dashboardHandler.GetUpcoming)

	// Assistant route
	api.POST("/assistant", assistantHandler.Ask)

	// Export routes
	export := api.Group("/export")
	export.GET("/expenses", exportHandler.ExportExpenses)
	export.GET("/goals", exportHandler.ExportGoals)
	export.GET("/bills", exportHandler.ExportBills)
	export.POST("/backup", exportHandler.Backup)

	// WebSocket route for live snapshot updates
	e.GET("/ws", wsHandler.HandleWS)
}
