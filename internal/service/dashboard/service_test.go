package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

type fakeDashboardStore struct {
	ledger    models.Ledger
	animals   []models.Animal
	crops     []models.Crop
	workers   flatfile.Sequenced[models.Worker]
	tasks     flatfile.Sequenced[models.Task]
	equipment flatfile.Sequenced[models.Equipment]
	contacts  flatfile.Sequenced[models.Contact]
}

func (f *fakeDashboardStore) LoadLedger(ctx context.Context) (models.Ledger, error) {
	return f.ledger, nil
}

func (f *fakeDashboardStore) LoadAnimals(ctx context.Context) ([]models.Animal, error) {
	return f.animals, nil
}

func (f *fakeDashboardStore) LoadCrops(ctx context.Context) ([]models.Crop, error) {
	return f.crops, nil
}

func (f *fakeDashboardStore) LoadWorkers(ctx context.Context) (flatfile.Sequenced[models.Worker], error) {
	return f.workers, nil
}

func (f *fakeDashboardStore) LoadTasks(ctx context.Context) (flatfile.Sequenced[models.Task], error) {
	return f.tasks, nil
}

func (f *fakeDashboardStore) LoadEquipment(ctx context.Context) (flatfile.Sequenced[models.Equipment], error) {
	return f.equipment, nil
}

func (f *fakeDashboardStore) LoadContacts(ctx context.Context) (flatfile.Sequenced[models.Contact], error) {
	return f.contacts, nil
}

type fakeCollector struct {
	alerts []string
}

func (f *fakeCollector) CollectAlerts(ctx context.Context) ([]string, bool, error) {
	return f.alerts, len(f.alerts) > 0, nil
}

func seededStore() *fakeDashboardStore {
	inProgress := models.TaskStatusInProgress
	return &fakeDashboardStore{
		ledger:  models.Ledger{Balance: 1250.5},
		animals: []models.Animal{{ID: "Cow001"}, {ID: "Cow002"}, {ID: "Sheep001"}},
		crops:   []models.Crop{{PlotName: "North field"}},
		workers: flatfile.Sequenced[models.Worker]{
			NextID: 3,
			Items:  []models.Worker{{ID: 1, Name: "Awa"}, {ID: 2, Name: "Moussa"}},
		},
		tasks: flatfile.Sequenced[models.Task]{
			NextID: 4,
			Items: []models.Task{
				{ID: 1, Status: inProgress},
				{ID: 2, Status: models.TaskStatusDone},
				{ID: 3, Status: inProgress},
			},
		},
		equipment: flatfile.Sequenced[models.Equipment]{
			NextID: 2,
			Items:  []models.Equipment{{ID: 1, Name: "Tractor"}},
		},
		contacts: flatfile.Sequenced[models.Contact]{
			NextID: 4,
			Items: []models.Contact{
				{ID: 1, ContactType: models.ContactSupplier},
				{ID: 2, ContactType: models.ContactCustomer},
				{ID: 3, ContactType: models.ContactSupplier},
			},
		},
	}
}

func TestQuickStats(t *testing.T) {
	svc := NewService(seededStore(), &fakeCollector{}, nil)

	stats, err := svc.QuickStats(context.Background())
	if err != nil {
		t.Fatalf("QuickStats: %v", err)
	}

	want := models.FarmStats{
		TotalAnimals:    3,
		TotalCrops:      1,
		TotalWorkers:    2,
		TasksInProgress: 2,
		TotalEquipment:  1,
		TotalSuppliers:  2,
		TotalCustomers:  1,
	}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestBuildDigest(t *testing.T) {
	collector := &fakeCollector{alerts: []string{
		"STOCK ALERT: 'Seed corn' is down to 2 (threshold: 5).",
	}}
	svc := NewService(seededStore(), collector, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC) }

	digest, err := svc.BuildDigest(context.Background())
	if err != nil {
		t.Fatalf("BuildDigest: %v", err)
	}

	if digest.Date != "2026-03-15" {
		t.Errorf("digest date = %q, want 2026-03-15", digest.Date)
	}
	if digest.Balance != 1250.5 {
		t.Errorf("digest balance = %v, want 1250.5", digest.Balance)
	}
	if digest.Stats.TotalAnimals != 3 {
		t.Errorf("digest animal count = %d, want 3", digest.Stats.TotalAnimals)
	}
	if len(digest.Alerts) != 1 {
		t.Errorf("digest alerts = %v, want the stock alert", digest.Alerts)
	}
}

func TestSnapshotFromDigest(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	digest := models.Digest{
		Date:    "2026-03-15",
		Balance: 10,
		Stats:   models.FarmStats{TotalAnimals: 2},
		Alerts:  []string{"a", "b"},
	}

	snap := SnapshotFromDigest(digest, createdAt)
	if !snap.Date.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("snapshot date = %v", snap.Date)
	}
	if snap.AlertCount != 2 || snap.TotalAnimals != 2 || snap.Balance != 10 {
		t.Errorf("snapshot = %+v", snap)
	}

	bad := SnapshotFromDigest(models.Digest{Date: "not-a-date"}, createdAt)
	if !bad.Date.Equal(createdAt) {
		t.Errorf("unparseable date fell back to %v, want %v", bad.Date, createdAt)
	}
}
