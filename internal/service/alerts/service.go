package alerts

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

// Store is the slice of the record store the alert service reads. It never
// writes.
type Store interface {
	LoadStock(ctx context.Context) ([]models.StockItem, error)
	LoadAnimals(ctx context.Context) ([]models.Animal, error)
	LoadCrops(ctx context.Context) ([]models.Crop, error)
	LoadTasks(ctx context.Context) (flatfile.Sequenced[models.Task], error)
	LoadEquipment(ctx context.Context) (flatfile.Sequenced[models.Equipment], error)
}

// Windows bundles the lookahead settings for the date-driven generators.
type Windows struct {
	AnimalHealth int
	CropHarvest  int
	CropSowing   int
	Task         int
	Equipment    int
}

// DefaultWindows returns the stock settings used when nothing is configured.
func DefaultWindows() Windows {
	return Windows{
		AnimalHealth: DefaultAnimalHealthWindow,
		CropHarvest:  DefaultCropHarvestWindow,
		CropSowing:   DefaultCropSowingWindow,
		Task:         DefaultTaskWindow,
		Equipment:    DefaultEquipmentWindow,
	}
}

// Service aggregates the five domain generators over the live record store.
type Service struct {
	store   Store
	windows Windows
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires an alert service instance.
func NewService(store Store, windows Windows, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		windows: windows,
		logger:  logger,
		now:     time.Now,
	}
}

// CollectAlerts runs every generator against the instant of the call and
// concatenates the results in fixed order: stock, animal health, crops,
// tasks, equipment. The boolean reports whether anything fired so callers can
// short-circuit an all-clear message.
func (s *Service) CollectAlerts(ctx context.Context) ([]string, bool, error) {
	now := s.now()

	stock, err := s.store.LoadStock(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load stock: %w", err)
	}
	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load animals: %w", err)
	}
	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load crops: %w", err)
	}
	tasks, err := s.store.LoadTasks(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load tasks: %w", err)
	}
	equipment, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load equipment: %w", err)
	}

	all := []string{}
	all = append(all, StockAlerts(stock)...)
	all = append(all, AnimalHealthAlerts(animals, now, s.windows.AnimalHealth)...)
	all = append(all, CropAlerts(crops, now, s.windows.CropHarvest, s.windows.CropSowing)...)
	all = append(all, TaskAlerts(tasks.Items, now, s.windows.Task)...)
	all = append(all, EquipmentAlerts(equipment.Items, now, s.windows.Equipment)...)

	s.logger.Debug("alerts collected", zap.Int("count", len(all)))
	return all, len(all) > 0, nil
}
