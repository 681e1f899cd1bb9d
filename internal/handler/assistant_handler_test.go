package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/service"
)

func newAssistantHandler(t *testing.T, gateway *httptest.Server) *AssistantHandler {
	t.Helper()
	store := newTestStore(t)
	metrics := service.NewMetricsServiceWithClock(fixedClock(2025, time.October, 15))
	svc := service.NewAssistantService(store, metrics, gateway.URL, "test-key", "test-model")
	return NewAssistantHandler(svc)
}

func gatewayStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAsk_Success(t *testing.T) {
	gateway := gatewayStub(t, http.StatusOK,
		`{"choices": [{"message": {"role": "assistant", "content": "Spend less on shoes."}}]}`)
	handler := newAssistantHandler(t, gateway)

	c, rec := newContext(t, http.MethodPost, "/api/v1/assistant", `{"question": "Where can I save?"}`)

	if err := handler.Ask(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response AskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Answer != "Spend less on shoes." {
		t.Errorf("Expected verbatim answer, got %q", response.Answer)
	}
}

func TestAsk_BlankQuestion(t *testing.T) {
	gateway := gatewayStub(t, http.StatusOK, `{}`)
	handler := newAssistantHandler(t, gateway)

	c, rec := newContext(t, http.MethodPost, "/api/v1/assistant", `{"question": "   "}`)

	if err := handler.Ask(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAsk_GatewayErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		gatewayStatus int
		wantStatus    int
		wantType      string
	}{
		{"rate limited", http.StatusTooManyRequests, http.StatusTooManyRequests, ErrorTypeRateLimit},
		{"quota exhausted", http.StatusPaymentRequired, http.StatusPaymentRequired, ErrorTypePaymentRequired},
		{"gateway down", http.StatusInternalServerError, http.StatusBadGateway, ErrorTypeBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := gatewayStub(t, tt.gatewayStatus, `{"error": "nope"}`)
			handler := newAssistantHandler(t, gateway)

			c, rec := newContext(t, http.MethodPost, "/api/v1/assistant", `{"question": "help"}`)

			if err := handler.Ask(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var problem ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if problem.Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, problem.Type)
			}
			if problem.Detail == "" {
				t.Error("Expected a user-facing detail message")
			}
		})
	}
}
