package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	repo := testutil.NewMockSnapshotStore()
	repo.Data = testutil.Fixture()
	store, err := ledger.Open(repo)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

// newContext builds an echo context for a JSON request. Path params are
// given as alternating name/value pairs.
func newContext(t *testing.T, method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(params)%2 != 0 {
		t.Fatal("params must be name/value pairs")
	}
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}
