package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// ErrNotFound indicates the named stock item does not exist.
var ErrNotFound = errors.New("stock item not found")

// ErrInsufficientStock indicates a sale asked for more than is on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// Store is the slice of the record store holding stock items.
type Store interface {
	LoadStock(ctx context.Context) ([]models.StockItem, error)
	SaveStock(ctx context.Context, items []models.StockItem) error
}

// FinanceRecorder posts the ledger side of sales and purchases.
type FinanceRecorder interface {
	RecordTransaction(ctx context.Context, kind models.TransactionKind, amount float64, description string) (models.Transaction, error)
}

// Service manages stock items and their financial side effects.
type Service struct {
	store   Store
	finance FinanceRecorder
	logger  *zap.Logger
}

// NewService wires an inventory service instance.
func NewService(store Store, finance FinanceRecorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, finance: finance, logger: logger}
}

// UpsertItem sets the quantity and alert threshold of the named item,
// creating it when no item matches the name ignoring case.
func (s *Service) UpsertItem(ctx context.Context, name string, quantity, threshold int) error {
	items, err := s.store.LoadStock(ctx)
	if err != nil {
		return fmt.Errorf("load stock: %w", err)
	}

	found := false
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			items[i].Quantity = quantity
			items[i].AlertThreshold = threshold
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.StockItem{Name: name, Quantity: quantity, AlertThreshold: threshold})
	}

	if err := s.store.SaveStock(ctx, items); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	s.logger.Info("stock item upserted", zap.String("name", name), zap.Int("quantity", quantity))
	return nil
}

// List returns every stock item.
func (s *Service) List(ctx context.Context) ([]models.StockItem, error) {
	items, err := s.store.LoadStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	return items, nil
}

// Quantity returns the on-hand count for the named item.
func (s *Service) Quantity(ctx context.Context, name string) (int, error) {
	items, err := s.store.LoadStock(ctx)
	if err != nil {
		return 0, fmt.Errorf("load stock: %w", err)
	}
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item.Quantity, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// RecordSale decrements stock and posts the matching income transaction. The
// quantity check happens before any mutation, so a failed sale leaves both
// stock and ledger untouched.
func (s *Service) RecordSale(ctx context.Context, name string, quantity int, unitPrice float64, client string) error {
	items, err := s.store.LoadStock(ctx)
	if err != nil {
		return fmt.Errorf("load stock: %w", err)
	}

	idx := -1
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if items[idx].Quantity < quantity {
		return fmt.Errorf("%w: %q has %d on hand, asked for %d", ErrInsufficientStock, name, items[idx].Quantity, quantity)
	}

	items[idx].Quantity -= quantity
	if err := s.store.SaveStock(ctx, items); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}

	description := fmt.Sprintf("Sale of %d '%s'", quantity, name)
	if client != "" {
		description += fmt.Sprintf(" to %s", client)
	}
	total := float64(quantity) * unitPrice
	if _, err := s.finance.RecordTransaction(ctx, models.TransactionIncome, total, description); err != nil {
		// Stock is already decremented at this point; there is no rollback.
		return fmt.Errorf("record sale income: %w", err)
	}

	s.logger.Info("sale recorded", zap.String("item", name), zap.Int("quantity", quantity), zap.Float64("total", total))
	return nil
}

// RecordPurchase increments stock (creating the item when newItem is set) and
// posts the matching expense. An unknown item without the newItem flag still
// posts the expense so the ledger stays truthful; the stock miss is logged.
func (s *Service) RecordPurchase(ctx context.Context, name string, quantity int, unitPrice float64, newItem bool, threshold int, supplier string) error {
	items, err := s.store.LoadStock(ctx)
	if err != nil {
		return fmt.Errorf("load stock: %w", err)
	}

	found := false
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	switch {
	case !found && newItem:
		items = append(items, models.StockItem{Name: name, Quantity: quantity, AlertThreshold: threshold})
	case !found:
		s.logger.Warn("purchased item not in stock, recording expense only", zap.String("item", name))
	}

	if err := s.store.SaveStock(ctx, items); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}

	description := fmt.Sprintf("Purchase of %d '%s'", quantity, name)
	if supplier != "" {
		description += fmt.Sprintf(" from %s", supplier)
	}
	total := float64(quantity) * unitPrice
	if _, err := s.finance.RecordTransaction(ctx, models.TransactionExpense, total, description); err != nil {
		return fmt.Errorf("record purchase expense: %w", err)
	}

	s.logger.Info("purchase recorded", zap.String("item", name), zap.Int("quantity", quantity), zap.Float64("total", total))
	return nil
}
