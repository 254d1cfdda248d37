package equipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

// ErrNotFound indicates no equipment carries the given id.
var ErrNotFound = errors.New("equipment not found")

// ErrDuplicateName indicates the equipment name is already taken, ignoring
// case.
var ErrDuplicateName = errors.New("equipment name already exists")

// Store is the slice of the record store holding equipment.
type Store interface {
	LoadEquipment(ctx context.Context) (flatfile.Sequenced[models.Equipment], error)
	SaveEquipment(ctx context.Context, col flatfile.Sequenced[models.Equipment]) error
}

// FinanceRecorder posts the expense side of paid maintenance work.
type FinanceRecorder interface {
	RecordTransaction(ctx context.Context, kind models.TransactionKind, amount float64, description string) (models.Transaction, error)
}

// Service manages the equipment register and its maintenance log.
type Service struct {
	store   Store
	finance FinanceRecorder
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires an equipment service instance.
func NewService(store Store, finance FinanceRecorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, finance: finance, logger: logger, now: time.Now}
}

func maxEquipmentID(items []models.Equipment) int {
	max := 0
	for _, eq := range items {
		if eq.ID > max {
			max = eq.ID
		}
	}
	return max
}

// Add registers a piece of equipment and returns the assigned id. Names are
// unique ignoring case.
func (s *Service) Add(ctx context.Context, eq models.Equipment) (int, error) {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return 0, fmt.Errorf("load equipment: %w", err)
	}

	for _, existing := range col.Items {
		if strings.EqualFold(existing.Name, eq.Name) {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateName, eq.Name)
		}
	}

	if eq.Condition == "" {
		eq.Condition = "functional"
	}
	eq.ID = col.Allocate(maxEquipmentID(col.Items))
	eq.MaintenanceHistory = []models.MaintenanceEntry{}
	eq.AddedAt = s.now().Format(models.TimestampLayout)
	col.Items = append(col.Items, eq)

	if err := s.store.SaveEquipment(ctx, col); err != nil {
		return 0, fmt.Errorf("save equipment: %w", err)
	}
	s.logger.Info("equipment added", zap.Int("id", eq.ID), zap.String("name", eq.Name))
	return eq.ID, nil
}

// List returns every piece of equipment.
func (s *Service) List(ctx context.Context) ([]models.Equipment, error) {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	return col.Items, nil
}

// Update applies the non-nil fields of the update to the equipment with the
// given id.
func (s *Service) Update(ctx context.Context, id int, update models.EquipmentUpdate) error {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}

	for i := range col.Items {
		if col.Items[i].ID != id {
			continue
		}
		if update.Name != nil {
			col.Items[i].Name = *update.Name
		}
		if update.Type != nil {
			col.Items[i].Type = *update.Type
		}
		if update.PurchaseDate != nil {
			col.Items[i].PurchaseDate = *update.PurchaseDate
		}
		if update.PurchaseCost != nil {
			col.Items[i].PurchaseCost = *update.PurchaseCost
		}
		if update.Condition != nil {
			col.Items[i].Condition = *update.Condition
		}
		if update.NextMaintenanceDate != nil {
			col.Items[i].NextMaintenanceDate = *update.NextMaintenanceDate
		}
		if err := s.store.SaveEquipment(ctx, col); err != nil {
			return fmt.Errorf("save equipment: %w", err)
		}
		s.logger.Info("equipment updated", zap.Int("id", id))
		return nil
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// RecordMaintenance appends a maintenance entry to the equipment's log. A
// positive cost posts the matching expense after the log is saved; there is
// no rollback of the log if the posting fails.
func (s *Service) RecordMaintenance(ctx context.Context, id int, date, description string, cost float64) error {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}

	idx := -1
	for i := range col.Items {
		if col.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	entry := models.MaintenanceEntry{Date: date, Description: description, Cost: cost}
	col.Items[idx].MaintenanceHistory = append(col.Items[idx].MaintenanceHistory, entry)

	if err := s.store.SaveEquipment(ctx, col); err != nil {
		return fmt.Errorf("save equipment: %w", err)
	}

	if cost > 0 {
		expense := fmt.Sprintf("Maintenance/Repair '%s' (%s)", col.Items[idx].Name, description)
		if _, err := s.finance.RecordTransaction(ctx, models.TransactionExpense, cost, expense); err != nil {
			return fmt.Errorf("record maintenance expense: %w", err)
		}
	}

	s.logger.Info("maintenance recorded", zap.Int("id", id), zap.Float64("cost", cost))
	return nil
}

// MaintenanceHistory returns the maintenance log for one piece of equipment.
func (s *Service) MaintenanceHistory(ctx context.Context, id int) ([]models.MaintenanceEntry, error) {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	for _, eq := range col.Items {
		if eq.ID == id {
			return eq.MaintenanceHistory, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Delete removes the equipment with the given id.
func (s *Service) Delete(ctx context.Context, id int) error {
	col, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}

	kept := col.Items[:0]
	for _, eq := range col.Items {
		if eq.ID != id {
			kept = append(kept, eq)
		}
	}
	if len(kept) == len(col.Items) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	col.Items = kept

	if err := s.store.SaveEquipment(ctx, col); err != nil {
		return fmt.Errorf("save equipment: %w", err)
	}
	s.logger.Info("equipment deleted", zap.Int("id", id))
	return nil
}
