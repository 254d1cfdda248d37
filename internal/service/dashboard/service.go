package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

// Store is the read-only slice of the record store the dashboard counts over.
type Store interface {
	LoadLedger(ctx context.Context) (models.Ledger, error)
	LoadAnimals(ctx context.Context) ([]models.Animal, error)
	LoadCrops(ctx context.Context) ([]models.Crop, error)
	LoadWorkers(ctx context.Context) (flatfile.Sequenced[models.Worker], error)
	LoadTasks(ctx context.Context) (flatfile.Sequenced[models.Task], error)
	LoadEquipment(ctx context.Context) (flatfile.Sequenced[models.Equipment], error)
	LoadContacts(ctx context.Context) (flatfile.Sequenced[models.Contact], error)
}

// AlertCollector supplies the aggregated alert list for the digest.
type AlertCollector interface {
	CollectAlerts(ctx context.Context) ([]string, bool, error)
}

// Service assembles the farm overview: quick stats and the daily digest.
type Service struct {
	store  Store
	alerts AlertCollector
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a dashboard service instance.
func NewService(store Store, alerts AlertCollector, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, alerts: alerts, logger: logger, now: time.Now}
}

// QuickStats counts the headline figures across every category.
func (s *Service) QuickStats(ctx context.Context) (models.FarmStats, error) {
	var stats models.FarmStats

	animals, err := s.store.LoadAnimals(ctx)
	if err != nil {
		return stats, fmt.Errorf("load animals: %w", err)
	}
	stats.TotalAnimals = len(animals)

	crops, err := s.store.LoadCrops(ctx)
	if err != nil {
		return stats, fmt.Errorf("load crops: %w", err)
	}
	stats.TotalCrops = len(crops)

	workers, err := s.store.LoadWorkers(ctx)
	if err != nil {
		return stats, fmt.Errorf("load workers: %w", err)
	}
	stats.TotalWorkers = len(workers.Items)

	tasks, err := s.store.LoadTasks(ctx)
	if err != nil {
		return stats, fmt.Errorf("load tasks: %w", err)
	}
	for _, task := range tasks.Items {
		if strings.EqualFold(task.Status, models.TaskStatusInProgress) {
			stats.TasksInProgress++
		}
	}

	equipment, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return stats, fmt.Errorf("load equipment: %w", err)
	}
	stats.TotalEquipment = len(equipment.Items)

	contacts, err := s.store.LoadContacts(ctx)
	if err != nil {
		return stats, fmt.Errorf("load contacts: %w", err)
	}
	for _, contact := range contacts.Items {
		switch {
		case strings.EqualFold(string(contact.ContactType), string(models.ContactSupplier)):
			stats.TotalSuppliers++
		case strings.EqualFold(string(contact.ContactType), string(models.ContactCustomer)):
			stats.TotalCustomers++
		}
	}

	return stats, nil
}

// BuildDigest assembles the daily overview: balance, quick stats and the full
// alert list as of the call instant.
func (s *Service) BuildDigest(ctx context.Context) (models.Digest, error) {
	ledger, err := s.store.LoadLedger(ctx)
	if err != nil {
		return models.Digest{}, fmt.Errorf("load ledger: %w", err)
	}

	stats, err := s.QuickStats(ctx)
	if err != nil {
		return models.Digest{}, err
	}

	alertList, _, err := s.alerts.CollectAlerts(ctx)
	if err != nil {
		return models.Digest{}, fmt.Errorf("collect alerts: %w", err)
	}

	return models.Digest{
		Date:    s.now().Format(models.DateLayout),
		Balance: ledger.Balance,
		Stats:   stats,
		Alerts:  alertList,
	}, nil
}

// SnapshotFromDigest converts a digest into its MongoDB archive form.
func SnapshotFromDigest(digest models.Digest, createdAt time.Time) models.FarmSnapshot {
	date, err := time.Parse(models.DateLayout, digest.Date)
	if err != nil {
		date = createdAt
	}
	return models.FarmSnapshot{
		Date:            date,
		Balance:         digest.Balance,
		TotalAnimals:    digest.Stats.TotalAnimals,
		TotalCrops:      digest.Stats.TotalCrops,
		TotalWorkers:    digest.Stats.TotalWorkers,
		TasksInProgress: digest.Stats.TasksInProgress,
		TotalEquipment:  digest.Stats.TotalEquipment,
		TotalSuppliers:  digest.Stats.TotalSuppliers,
		TotalCustomers:  digest.Stats.TotalCustomers,
		AlertCount:      len(digest.Alerts),
		CreatedAt:       createdAt,
	}
}
