package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/abhiraj/finpal/finpal-backend/internal/service"
)

type mockBackupRepo struct {
	keys     []string
	payloads [][]byte
	err      error
}

func (m *mockBackupRepo) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, objectPath)
	m.payloads = append(m.payloads, data)
	return objectPath, nil
}

func (m *mockBackupRepo) Delete(ctx context.Context, objectPath string) error {
	return m.err
}

func TestExportExpenses_ServesCSV(t *testing.T) {
	store := newTestStore(t)
	handler := NewExportHandler(service.NewExportService(store), store, nil)

	c, rec := newContext(t, http.MethodGet, "/api/v1/export/expenses", "")

	if err := handler.ExportExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses.csv") {
		t.Errorf("Expected attachment filename expenses.csv, got %s", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if lines[0] != "Date,Amount,Category,Mode,Note" {
		t.Errorf("Unexpected header row: %s", lines[0])
	}
	if len(lines) != 5 {
		t.Errorf("Expected header plus 4 rows, got %d lines", len(lines))
	}
}

func TestBackup_UploadsSnapshot(t *testing.T) {
	store := newTestStore(t)
	backups := &mockBackupRepo{}
	handler := NewExportHandler(service.NewExportService(store), store, backups)

	c, rec := newContext(t, http.MethodPost, "/api/v1/export/backup", "")

	if err := handler.Backup(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	if len(backups.keys) != 1 {
		t.Fatalf("Expected 1 upload, got %d", len(backups.keys))
	}
	if !strings.HasPrefix(backups.keys[0], "backups/pfs-data-") {
		t.Errorf("Unexpected backup key: %s", backups.keys[0])
	}

	var response BackupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Key != backups.keys[0] {
		t.Errorf("Expected key %s, got %s", backups.keys[0], response.Key)
	}

	// The payload is the full aggregate
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(backups.payloads[0], &snapshot); err != nil {
		t.Fatalf("Backup payload is not valid JSON: %v", err)
	}
	if _, ok := snapshot["expenses"]; !ok {
		t.Error("Expected backup payload to contain expenses")
	}
}

func TestBackup_NotConfigured(t *testing.T) {
	store := newTestStore(t)
	handler := NewExportHandler(service.NewExportService(store), store, nil)

	c, rec := newContext(t, http.MethodPost, "/api/v1/export/backup", "")

	if err := handler.Backup(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}
