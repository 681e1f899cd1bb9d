package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternalError    = errors.New("internal error")
	ErrSnapshotNotFound = errors.New("snapshot not found")

	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth      = errors.New("month must be in YYYY-MM format")
	ErrCategoryRequired  = errors.New("category is required")
	ErrModeRequired      = errors.New("payment mode is required")
	ErrInvalidTheme      = errors.New("unsupported theme")
	ErrInvalidCurrency   = errors.New("currency code is required")
	ErrInvalidRecurrence = errors.New("recurring must be monthly or one-time")
	ErrInvalidCycle      = errors.New("cycle must be monthly, quarterly or yearly")
	ErrInvalidDebtType   = errors.New("debt type must be owed_to_me or i_owe")

	ErrExpenseNotFound      = errors.New("expense not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrBillNotFound         = errors.New("bill not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrDebtNotFound         = errors.New("debt not found")
	ErrChallengeNotFound    = errors.New("challenge not found")

	ErrContributionNotPositive = errors.New("contribution must be a positive amount")
)

// Assistant errors classify failures of the external AI collaborator.
var (
	ErrAssistantRateLimited    = errors.New("assistant rate limited")
	ErrAssistantQuotaExhausted = errors.New("assistant credits exhausted")
	ErrAssistantUnavailable    = errors.New("assistant unavailable")
)

// Validation constants
const (
	MaxNameLength = 255
)
