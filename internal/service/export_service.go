package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
)

// ExportService builds CSV exports of the ledger collections.
type ExportService struct {
	store *ledger.Store
}

// NewExportService creates a new ExportService.
func NewExportService(store *ledger.Store) *ExportService {
	return &ExportService{store: store}
}

// Export is one downloadable CSV file.
type Export struct {
	Filename string
	Content  []byte
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Expenses exports all expense entries.
func (s *ExportService) Expenses() (*Export, error) {
	data := s.store.Snapshot()

	rows := make([][]string, 0, len(data.Expenses))
	for _, e := range data.Expenses {
		rows = append(rows, []string{e.Date, e.Amount.String(), e.Category, e.Mode, e.Note})
	}

	content, err := writeCSV([]string{"Date", "Amount", "Category", "Mode", "Note"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "expenses.csv", Content: content}, nil
}

// Goals exports all savings goals with their progress percentage.
func (s *ExportService) Goals() (*Export, error) {
	data := s.store.Snapshot()

	rows := make([][]string, 0, len(data.Goals))
	for _, g := range data.Goals {
		progress := "0.0%"
		if !g.Target.IsZero() {
			pct, _ := g.Saved.Div(g.Target).Mul(hundred).Float64()
			progress = fmt.Sprintf("%.1f%%", pct)
		}
		rows = append(rows, []string{g.Name, g.Target.String(), g.Saved.String(), progress})
	}

	content, err := writeCSV([]string{"Name", "Target", "Saved", "Progress"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "savings-goals.csv", Content: content}, nil
}

// BillsAndSubscriptions exports bills and subscriptions as one combined
// file under the union column set: bill rows fill DueDate/Recurring,
// subscription rows fill NextDue/Cycle, the other pair stays blank.
func (s *ExportService) BillsAndSubscriptions() (*Export, error) {
	data := s.store.Snapshot()

	rows := make([][]string, 0, len(data.Bills)+len(data.Subscriptions))
	for _, b := range data.Bills {
		rows = append(rows, []string{b.Name, b.Amount.String(), b.DueDate, string(b.Recurring), "", ""})
	}
	for _, sub := range data.Subscriptions {
		rows = append(rows, []string{sub.Name, sub.Amount.String(), "", "", sub.NextDue, string(sub.Cycle)})
	}

	content, err := writeCSV([]string{"Name", "Amount", "DueDate", "Recurring", "NextDue", "Cycle"}, rows)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: "bills-subscriptions.csv", Content: content}, nil
}
