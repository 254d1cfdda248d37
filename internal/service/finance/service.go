package finance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// ErrInvalidDateRange indicates a report was asked for with dates that do not
// parse as calendar days.
var ErrInvalidDateRange = errors.New("invalid date range, expected YYYY-MM-DD")

// ErrUnknownKind indicates a transaction kind other than income or expense.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Store is the slice of the record store holding the ledger.
type Store interface {
	LoadLedger(ctx context.Context) (models.Ledger, error)
	SaveLedger(ctx context.Context, ledger models.Ledger) error
}

// Service owns the transaction ledger and the two financial reports.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a finance service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// RecordTransaction appends a ledger entry and moves the running balance in
// the same save. Entries are immutable once written.
func (s *Service) RecordTransaction(ctx context.Context, kind models.TransactionKind, amount float64, description string) (models.Transaction, error) {
	if kind != models.TransactionIncome && kind != models.TransactionExpense {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("load ledger: %w", err)
	}

	txn := models.Transaction{
		Date:        s.now().Format(models.TimestampLayout),
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}
	ledger.Transactions = append(ledger.Transactions, txn)
	switch kind {
	case models.TransactionIncome:
		ledger.Balance += amount
	case models.TransactionExpense:
		ledger.Balance -= amount
	}

	if err := s.store.SaveLedger(ctx, ledger); err != nil {
		return models.Transaction{}, fmt.Errorf("save ledger: %w", err)
	}

	s.logger.Info("transaction recorded",
		zap.String("kind", string(kind)),
		zap.Float64("amount", amount),
		zap.Float64("balance", ledger.Balance))
	return txn, nil
}

// Balance returns the current running balance.
func (s *Service) Balance(ctx context.Context) (float64, error) {
	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return 0, fmt.Errorf("load ledger: %w", err)
	}
	return ledger.Balance, nil
}

// History returns the full transaction list plus the balance.
func (s *Service) History(ctx context.Context) (models.Ledger, error) {
	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("load ledger: %w", err)
	}
	return ledger, nil
}

// ProfitLossReport summarizes one inclusive date range of the ledger.
type ProfitLossReport struct {
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// ProfitLoss sums income and expense over [start 00:00:00, end 23:59:59].
// Both bounds must be DateLayout strings; rows with unparsable timestamps are
// skipped with a warning. The ledger is not touched.
func (s *Service) ProfitLoss(ctx context.Context, start, end string) (ProfitLossReport, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return ProfitLossReport{}, err
	}

	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return ProfitLossReport{}, fmt.Errorf("load ledger: %w", err)
	}

	report := ProfitLossReport{Start: start, End: end}
	for _, txn := range ledger.Transactions {
		when, err := time.Parse(models.TimestampLayout, txn.Date)
		if err != nil {
			s.logger.Warn("skipping transaction with invalid date", zap.String("date", txn.Date))
			continue
		}
		if when.Before(from) || when.After(to) {
			continue
		}
		switch txn.Kind {
		case models.TransactionIncome:
			report.Income += txn.Amount
		case models.TransactionExpense:
			report.Expense += txn.Amount
		}
	}
	report.Net = report.Income - report.Expense
	return report, nil
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// ExpenseReport is the keyword-bucketed expense breakdown for a period. A
// zero Total with no Categories means there was nothing to analyze.
type ExpenseReport struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// ExpensesByCategory buckets expense descriptions into the six fixed
// categories and reports each bucket's share of the period total. Categories
// come back sorted by name, not by amount.
func (s *Service) ExpensesByCategory(ctx context.Context, start, end string) (ExpenseReport, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return ExpenseReport{}, err
	}

	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return ExpenseReport{}, fmt.Errorf("load ledger: %w", err)
	}

	totals := map[string]float64{}
	for _, txn := range ledger.Transactions {
		if txn.Kind != models.TransactionExpense {
			continue
		}
		when, err := time.Parse(models.TimestampLayout, txn.Date)
		if err != nil {
			continue
		}
		if when.Before(from) || when.After(to) {
			continue
		}
		totals[categorizeExpense(txn.Description)] += txn.Amount
	}

	report := ExpenseReport{Start: start, End: end, Categories: []CategoryTotal{}}
	for _, amount := range totals {
		report.Total += amount
	}
	if report.Total == 0 {
		// Nothing to analyze; never divide by the zero total.
		return report, nil
	}

	for category, amount := range totals {
		report.Categories = append(report.Categories, CategoryTotal{
			Category: category,
			Amount:   amount,
			Percent:  amount / report.Total * 100,
		})
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})
	return report, nil
}

// parseRange validates the report bounds and stretches the end to the last
// second of its day so same-day transactions are included.
func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, start)
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, end)
	}
	to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return from, to, nil
}
