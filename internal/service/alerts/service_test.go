package alerts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

type fakeStore struct {
	stock     []models.StockItem
	animals   []models.Animal
	crops     []models.Crop
	tasks     []models.Task
	equipment []models.Equipment
}

func (f *fakeStore) LoadStock(ctx context.Context) ([]models.StockItem, error) {
	return f.stock, nil
}

func (f *fakeStore) LoadAnimals(ctx context.Context) ([]models.Animal, error) {
	return f.animals, nil
}

func (f *fakeStore) LoadCrops(ctx context.Context) ([]models.Crop, error) {
	return f.crops, nil
}

func (f *fakeStore) LoadTasks(ctx context.Context) (flatfile.Sequenced[models.Task], error) {
	return flatfile.Sequenced[models.Task]{Items: f.tasks}, nil
}

func (f *fakeStore) LoadEquipment(ctx context.Context) (flatfile.Sequenced[models.Equipment], error) {
	return flatfile.Sequenced[models.Equipment]{Items: f.equipment}, nil
}

func TestService_CollectAlerts_FixedOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)

	store := &fakeStore{
		stock:     []models.StockItem{{Name: "Corn", Quantity: 3, AlertThreshold: 5}},
		animals:   []models.Animal{{ID: "Sheep001", Species: "Sheep", NextVaccineDate: yesterday}},
		crops:     []models.Crop{{PlotName: "Plot_A", CropType: "Maize", SowDate: yesterday, Status: models.CropStatusInPreparation}},
		tasks:     []models.Task{{Name: "Fix fence", DueDate: yesterday, Status: models.TaskStatusInProgress}},
		equipment: []models.Equipment{{Name: "Tractor", NextMaintenanceDate: yesterday}},
	}

	svc := NewService(store, DefaultWindows(), nil)
	svc.now = func() time.Time { return now }

	got, any, err := svc.CollectAlerts(context.Background())
	if err != nil {
		t.Fatalf("CollectAlerts: %v", err)
	}
	if !any {
		t.Error("expected any=true")
	}
	if len(got) != 5 {
		t.Fatalf("got %d alerts, want 5: %v", len(got), got)
	}

	wantOrder := []string{"Corn", "Sheep001", "Plot_A", "Fix fence", "Tractor"}
	for i, ref := range wantOrder {
		if !strings.Contains(got[i], ref) {
			t.Errorf("alert[%d] = %q, want reference to %q (stock, animal, crop, task, equipment order)", i, got[i], ref)
		}
	}
}

func TestService_CollectAlerts_AllClear(t *testing.T) {
	svc := NewService(&fakeStore{}, DefaultWindows(), nil)

	got, any, err := svc.CollectAlerts(context.Background())
	if err != nil {
		t.Fatalf("CollectAlerts: %v", err)
	}
	if any {
		t.Errorf("expected any=false, got alerts %v", got)
	}
	if len(got) != 0 {
		t.Errorf("expected no alerts, got %v", got)
	}
}
