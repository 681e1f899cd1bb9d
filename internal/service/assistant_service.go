package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AssistantService is the bridge to the external AI completion
// collaborator. It is stateless per call: every question ships the live
// ledger snapshot, and conversation history lives entirely with the
// caller.
type AssistantService struct {
	store   *ledger.Store
	metrics *MetricsService
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	busy    atomic.Bool
}

// NewAssistantService creates a new AssistantService. No timeout is set
// on the client; callers cancel via context.
func NewAssistantService(store *ledger.Store, metrics *MetricsService, baseURL, apiKey, model string) *AssistantService {
	return &AssistantService{
		store:   store,
		metrics: metrics,
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

// Busy reports whether a request is in flight, for duplicate-submit
// suppression. It is advisory only and never blocks a call.
func (s *AssistantService) Busy() bool {
	return s.busy.Load()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// financialContext is the snapshot summary serialized into the system
// prompt.
type financialContext struct {
	TotalIncome   decimal.Decimal       `json:"totalIncome"`
	TotalExpenses decimal.Decimal       `json:"totalExpenses"`
	MonthlyBudget decimal.Decimal       `json:"monthlyBudget"`
	Expenses      []domain.Expense      `json:"expenses"`
	Goals         []domain.Goal         `json:"goals"`
	Bills         []domain.Bill         `json:"bills"`
	Subscriptions []domain.Subscription `json:"subscriptions"`
	Debts         []domain.Debt         `json:"debts"`
	Challenges    []domain.Challenge    `json:"challenges"`
	Badges        []string              `json:"badges"`
}

// Ask serializes the current snapshot plus the question into one request
// to the completion gateway and returns the answer verbatim. Failures
// are classified as ErrAssistantRateLimited, ErrAssistantQuotaExhausted
// or ErrAssistantUnavailable.
func (s *AssistantService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrInvalidInput
	}

	s.busy.Store(true)
	defer s.busy.Store(false)

	data := s.store.Snapshot()
	summary := s.metrics.Summary(data)

	fc := financialContext{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpense,
		MonthlyBudget: data.Settings.MonthlyBudget,
		Expenses:      data.Expenses,
		Goals:         data.Goals,
		Bills:         data.Bills,
		Subscriptions: data.Subscriptions,
		Debts:         data.Debts,
		Challenges:    data.Challenges,
		Badges:        data.Badges,
	}
	detail, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: serialize snapshot: %v", domain.ErrAssistantUnavailable, err)
	}

	systemPrompt := fmt.Sprintf(`You are a helpful personal finance assistant. Analyze the user's financial data and provide clear, actionable insights.

Financial Summary:
- Total Income: %s
- Total Expenses: %s
- Monthly Budget: %s
- Net Balance: %s

Detailed Data:
%s

Provide concise, friendly advice. Use emojis sparingly. Focus on actionable insights and encouragement.`,
		summary.TotalIncome, summary.TotalExpense, data.Settings.MonthlyBudget, summary.NetBalance, detail)

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrAssistantUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn().
			Int("status", resp.StatusCode).
			Str("body", string(errBody)).
			Msg("AI gateway error")

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", domain.ErrAssistantRateLimited
		case http.StatusPaymentRequired:
			return "", domain.ErrAssistantQuotaExhausted
		default:
			return "", fmt.Errorf("%w: gateway status %d", domain.ErrAssistantUnavailable, resp.StatusCode)
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrAssistantUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrAssistantUnavailable)
	}

	return parsed.Choices[0].Message.Content, nil
}
