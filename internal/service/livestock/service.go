package livestock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// ErrNotFound indicates no animal carries the given id.
var ErrNotFound = errors.New("animal not found")

// ErrDuplicateID indicates the id is already taken, ignoring case.
var ErrDuplicateID = errors.New("animal id already exists")

// Store is the slice of the record store holding animals.
type Store interface {
	LoadAnimals(ctx context.Context) ([]models.Animal, error)
	SaveAnimals(ctx context.Context, animals []models.Animal) error
}

// Service manages the livestock register.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a livestock service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Add registers a new animal. The id must be unique ignoring case.
func (s *Service) Add(ctx context.Context, animal models.Animal) error {
	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return fmt.Errorf("load animals: %w", err)
	}

	for _, existing := range animals {
		if strings.EqualFold(existing.ID, animal.ID) {
			return fmt.Errorf("%w: %q", ErrDuplicateID, animal.ID)
		}
	}

	if animal.HealthStatus == "" {
		animal.HealthStatus = "good"
	}
	animal.AddedAt = s.now().Format(models.TimestampLayout)
	animals = append(animals, animal)

	if err := s.store.SaveAnimals(ctx, animals); err != nil {
		return fmt.Errorf("save animals: %w", err)
	}
	s.logger.Info("animal added", zap.String("id", animal.ID), zap.String("species", animal.Species))
	return nil
}

// List returns every animal.
func (s *Service) List(ctx context.Context) ([]models.Animal, error) {
	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load animals: %w", err)
	}
	return animals, nil
}

// Update applies the non-nil fields of the update to the animal with the
// given id, matched ignoring case.
func (s *Service) Update(ctx context.Context, id string, update models.AnimalUpdate) error {
	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return fmt.Errorf("load animals: %w", err)
	}

	for i := range animals {
		if !strings.EqualFold(animals[i].ID, id) {
			continue
		}
		if update.Species != nil {
			animals[i].Species = *update.Species
		}
		if update.BirthDate != nil {
			animals[i].BirthDate = *update.BirthDate
		}
		if update.Sex != nil {
			animals[i].Sex = *update.Sex
		}
		if update.HealthStatus != nil {
			animals[i].HealthStatus = *update.HealthStatus
		}
		if update.NextVaccineDate != nil {
			animals[i].NextVaccineDate = *update.NextVaccineDate
		}
		if update.NextDewormDate != nil {
			animals[i].NextDewormDate = *update.NextDewormDate
		}
		if err := s.store.SaveAnimals(ctx, animals); err != nil {
			return fmt.Errorf("save animals: %w", err)
		}
		s.logger.Info("animal updated", zap.String("id", id))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Delete removes the animal with the given id, matched ignoring case.
func (s *Service) Delete(ctx context.Context, id string) error {
	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return fmt.Errorf("load animals: %w", err)
	}

	kept := animals[:0]
	for _, animal := range animals {
		if !strings.EqualFold(animal.ID, id) {
			kept = append(kept, animal)
		}
	}
	if len(kept) == len(animals) {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	if err := s.store.SaveAnimals(ctx, kept); err != nil {
		return fmt.Errorf("save animals: %w", err)
	}
	s.logger.Info("animal deleted", zap.String("id", id))
	return nil
}
