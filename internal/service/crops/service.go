package crops

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// ErrNotFound indicates no crop uses the given plot name.
var ErrNotFound = errors.New("crop not found")

// ErrDuplicatePlot indicates the plot name is already taken, ignoring case.
var ErrDuplicatePlot = errors.New("plot name already exists")

// Store is the slice of the record store holding crops.
type Store interface {
	LoadCrops(ctx context.Context) ([]models.Crop, error)
	SaveCrops(ctx context.Context, crops []models.Crop) error
}

// Service manages the crop register.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a crop service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Add registers a new crop. The plot name must be unique ignoring case.
func (s *Service) Add(ctx context.Context, crop models.Crop) error {
	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return fmt.Errorf("load crops: %w", err)
	}

	for _, existing := range crops {
		if strings.EqualFold(existing.PlotName, crop.PlotName) {
			return fmt.Errorf("%w: %q", ErrDuplicatePlot, crop.PlotName)
		}
	}

	if crop.Status == "" {
		crop.Status = models.CropStatusGrowing
	}
	if crop.Unit == "" {
		crop.Unit = "m²"
	}
	crop.AddedAt = s.now().Format(models.TimestampLayout)
	crops = append(crops, crop)

	if err := s.store.SaveCrops(ctx, crops); err != nil {
		return fmt.Errorf("save crops: %w", err)
	}
	s.logger.Info("crop added", zap.String("plot", crop.PlotName), zap.String("type", crop.CropType))
	return nil
}

// List returns every crop.
func (s *Service) List(ctx context.Context) ([]models.Crop, error) {
	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("load crops: %w", err)
	}
	return crops, nil
}

// Update applies the non-nil fields of the update to the crop on the given
// plot, matched ignoring case.
func (s *Service) Update(ctx context.Context, plotName string, update models.CropUpdate) error {
	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return fmt.Errorf("load crops: %w", err)
	}

	for i := range crops {
		if !strings.EqualFold(crops[i].PlotName, plotName) {
			continue
		}
		if update.CropType != nil {
			crops[i].CropType = *update.CropType
		}
		if update.SowDate != nil {
			crops[i].SowDate = *update.SowDate
		}
		if update.EstHarvestDate != nil {
			crops[i].EstHarvestDate = *update.EstHarvestDate
		}
		if update.Status != nil {
			crops[i].Status = *update.Status
		}
		if update.Quantity != nil {
			crops[i].Quantity = update.Quantity
		}
		if update.Unit != nil {
			crops[i].Unit = *update.Unit
		}
		if err := s.store.SaveCrops(ctx, crops); err != nil {
			return fmt.Errorf("save crops: %w", err)
		}
		s.logger.Info("crop updated", zap.String("plot", plotName))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotFound, plotName)
}

// Delete removes the crop on the given plot, matched ignoring case.
func (s *Service) Delete(ctx context.Context, plotName string) error {
	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return fmt.Errorf("load crops: %w", err)
	}

	kept := crops[:0]
	for _, crop := range crops {
		if !strings.EqualFold(crop.PlotName, plotName) {
			kept = append(kept, crop)
		}
	}
	if len(kept) == len(crops) {
		return fmt.Errorf("%w: %q", ErrNotFound, plotName)
	}

	if err := s.store.SaveCrops(ctx, kept); err != nil {
		return fmt.Errorf("save crops: %w", err)
	}
	s.logger.Info("crop deleted", zap.String("plot", plotName))
	return nil
}
