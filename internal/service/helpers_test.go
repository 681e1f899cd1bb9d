package service

import (
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/testutil"
)

func mustOpen(t *testing.T, repo *testutil.MockSnapshotStore) *ledger.Store {
	t.Helper()
	store, err := ledger.Open(repo)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	repo := testutil.NewMockSnapshotStore()
	repo.Data = testutil.Fixture()
	return mustOpen(t, repo)
}
