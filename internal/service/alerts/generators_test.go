package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// Reference instant for all date checks: mid-morning so "today at midnight"
// is already in the past, as it is for an operator running the tool.
var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestStockAlerts(t *testing.T) {
	tests := []struct {
		name      string
		items     []models.StockItem
		wantCount int
		wantRef   string
	}{
		{
			name:      "below threshold fires",
			items:     []models.StockItem{{Name: "Corn", Quantity: 3, AlertThreshold: 5}},
			wantCount: 1,
			wantRef:   "Corn",
		},
		{
			name:      "exactly at threshold fires",
			items:     []models.StockItem{{Name: "Seed", Quantity: 5, AlertThreshold: 5}},
			wantCount: 1,
			wantRef:   "Seed",
		},
		{
			name:      "above threshold silent",
			items:     []models.StockItem{{Name: "Feed", Quantity: 6, AlertThreshold: 5}},
			wantCount: 0,
		},
		{
			name: "only low items fire",
			items: []models.StockItem{
				{Name: "Corn", Quantity: 3, AlertThreshold: 5},
				{Name: "Fertilizer", Quantity: 50, AlertThreshold: 10},
			},
			wantCount: 1,
			wantRef:   "Corn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StockAlerts(tt.items)
			if len(got) != tt.wantCount {
				t.Fatalf("StockAlerts() returned %d alerts, want %d: %v", len(got), tt.wantCount, got)
			}
			if tt.wantRef != "" && !strings.Contains(got[0], tt.wantRef) {
				t.Errorf("alert %q does not reference %q", got[0], tt.wantRef)
			}
		})
	}
}

func TestAnimalHealthAlerts(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(models.DateLayout)
	inFive := testNow.AddDate(0, 0, 5).Format(models.DateLayout)
	inTwenty := testNow.AddDate(0, 0, 20).Format(models.DateLayout)

	tests := []struct {
		name       string
		animal     models.Animal
		wantCount  int
		wantMarker string
	}{
		{
			name:       "vaccine yesterday is overdue",
			animal:     models.Animal{ID: "Sheep001", Species: "Sheep", NextVaccineDate: yesterday},
			wantCount:  1,
			wantMarker: "URGENT HEALTH: vaccine overdue",
		},
		{
			name:       "vaccine within window is upcoming",
			animal:     models.Animal{ID: "Sheep001", Species: "Sheep", NextVaccineDate: inFive},
			wantCount:  1,
			wantMarker: "HEALTH ALERT: vaccine due",
		},
		{
			name:      "vaccine beyond window is silent",
			animal:    models.Animal{ID: "Sheep001", Species: "Sheep", NextVaccineDate: inTwenty},
			wantCount: 0,
		},
		{
			name:      "absent dates produce nothing",
			animal:    models.Animal{ID: "Sheep001", Species: "Sheep"},
			wantCount: 0,
		},
		{
			name:      "unparsable date is skipped silently",
			animal:    models.Animal{ID: "Sheep001", Species: "Sheep", NextVaccineDate: "15/03/2026"},
			wantCount: 0,
		},
		{
			name:       "deworming checked independently",
			animal:     models.Animal{ID: "Ox_A1", Species: "Ox", NextDewormDate: yesterday},
			wantCount:  1,
			wantMarker: "deworming overdue",
		},
		{
			name: "both dates due yields two alerts",
			animal: models.Animal{
				ID: "Hen42", Species: "Hen",
				NextVaccineDate: yesterday,
				NextDewormDate:  inFive,
			},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnimalHealthAlerts([]models.Animal{tt.animal}, testNow, DefaultAnimalHealthWindow)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d alerts, want %d: %v", len(got), tt.wantCount, got)
			}
			if tt.wantMarker != "" && !strings.Contains(got[0], tt.wantMarker) {
				t.Errorf("alert %q missing marker %q", got[0], tt.wantMarker)
			}
		})
	}
}

func TestAnimalHealthAlerts_ScenarioOverdueVaccineNoDeworm(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(models.DateLayout)
	animals := []models.Animal{{ID: "Sheep001", Species: "Sheep", NextVaccineDate: yesterday}}

	got := AnimalHealthAlerts(animals, testNow, DefaultAnimalHealthWindow)
	if len(got) != 1 {
		t.Fatalf("want exactly one alert, got %v", got)
	}
	if !strings.Contains(got[0], "vaccine overdue") || !strings.Contains(got[0], "Sheep001") {
		t.Errorf("unexpected alert: %q", got[0])
	}
	if strings.Contains(got[0], "deworming") {
		t.Errorf("deworm alert fired without a deworm date: %q", got[0])
	}
}

func TestCheckDue_WindowBoundaries(t *testing.T) {
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		now  time.Time
		want dueState
	}{
		{
			name: "date equal to now counts as upcoming",
			date: "2026-03-15",
			now:  midnight,
			want: dueSoon,
		},
		{
			name: "date equal to now plus window counts as upcoming",
			date: "2026-03-22",
			now:  midnight,
			want: dueSoon,
		},
		{
			name: "one day past the window is silent",
			date: "2026-03-23",
			now:  midnight,
			want: dueNone,
		},
		{
			name: "date before now is overdue",
			date: "2026-03-14",
			now:  midnight,
			want: dueOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := checkDue(tt.date, tt.now, 7)
			if got != tt.want {
				t.Errorf("checkDue(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestCheckDue_DaysRemainingTruncated(t *testing.T) {
	// 10:00 now, due in 2 calendar days at midnight: 1d14h away, so 1 day.
	_, days := checkDue("2026-03-17", testNow, 7)
	if days != 1 {
		t.Errorf("days remaining = %d, want 1 (truncated)", days)
	}
}

func TestCropAlerts_StatusGating(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(models.DateLayout)

	tests := []struct {
		name       string
		crop       models.Crop
		wantCount  int
		wantMarker string
	}{
		{
			name: "sowing check fires only in preparation",
			crop: models.Crop{
				PlotName: "Plot_A", CropType: "Maize",
				SowDate: yesterday, Status: "In Preparation",
			},
			wantCount:  1,
			wantMarker: "sowing overdue",
		},
		{
			name: "sowing check silent while growing",
			crop: models.Crop{
				PlotName: "Plot_A", CropType: "Maize",
				SowDate: yesterday, Status: models.CropStatusGrowing,
			},
			wantCount: 0,
		},
		{
			name: "harvest check fires only while growing",
			crop: models.Crop{
				PlotName: "Plot_B", CropType: "Rice",
				SowDate: "2026-01-01", EstHarvestDate: yesterday, Status: "GROWING",
			},
			wantCount:  1,
			wantMarker: "harvest overdue",
		},
		{
			name: "harvest check silent once harvested",
			crop: models.Crop{
				PlotName: "Plot_B", CropType: "Rice",
				SowDate: "2026-01-01", EstHarvestDate: yesterday, Status: "harvested",
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropAlerts([]models.Crop{tt.crop}, testNow, DefaultCropHarvestWindow, DefaultCropSowingWindow)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d alerts, want %d: %v", len(got), tt.wantCount, got)
			}
			if tt.wantMarker != "" && !strings.Contains(got[0], tt.wantMarker) {
				t.Errorf("alert %q missing marker %q", got[0], tt.wantMarker)
			}
		})
	}
}

func TestTaskAlerts_OnlyInProgress(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(models.DateLayout)

	tasks := []models.Task{
		{Name: "Fix fence", DueDate: yesterday, Status: "In Progress", AssignedWorkerName: "Awa"},
		{Name: "Old job", DueDate: yesterday, Status: models.TaskStatusDone},
		{Name: "Dropped job", DueDate: yesterday, Status: models.TaskStatusCancelled},
	}

	got := TaskAlerts(tasks, testNow, DefaultTaskWindow)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Fix fence") || !strings.Contains(got[0], "Awa") {
		t.Errorf("unexpected alert: %q", got[0])
	}
}

func TestEquipmentAlerts(t *testing.T) {
	inTen := testNow.AddDate(0, 0, 10).Format(models.DateLayout)

	equipment := []models.Equipment{
		{Name: "Tractor", NextMaintenanceDate: inTen},
		{Name: "Plow"}, // no date, no alert
		{Name: "Pump", NextMaintenanceDate: "not-a-date"},
	}

	got := EquipmentAlerts(equipment, testNow, DefaultEquipmentWindow)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Tractor") || !strings.Contains(got[0], "maintenance due") {
		t.Errorf("unexpected alert: %q", got[0])
	}
}
