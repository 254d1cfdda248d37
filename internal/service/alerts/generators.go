package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// Default lookahead windows, in days, for the date-driven checks. Stock has
// no window: it alerts on an immediate threshold comparison.
const (
	DefaultAnimalHealthWindow = 7
	DefaultCropHarvestWindow  = 14
	DefaultCropSowingWindow   = 7
	DefaultTaskWindow         = 3
	DefaultEquipmentWindow    = 30
)

type dueState int

const (
	dueNone dueState = iota
	dueOverdue
	dueSoon
)

// checkDue classifies a DateLayout string against now and a lookahead window.
// Unparsable dates classify as dueNone: a bad date in one record must never
// abort the scan. The days-remaining count is truncated, not rounded.
func checkDue(dateStr string, now time.Time, windowDays int) (dueState, int) {
	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return dueNone, 0
	}
	if date.Before(now) {
		return dueOverdue, 0
	}
	if !date.After(now.AddDate(0, 0, windowDays)) {
		return dueSoon, int(date.Sub(now).Hours() / 24)
	}
	return dueNone, 0
}

// StockAlerts emits one alert per item whose quantity has fallen to its
// threshold or below. Output order follows input order.
func StockAlerts(items []models.StockItem) []string {
	var out []string
	for _, item := range items {
		if item.Quantity <= item.AlertThreshold {
			out = append(out, fmt.Sprintf("STOCK ALERT: '%s' is down to %d (threshold: %d).",
				item.Name, item.Quantity, item.AlertThreshold))
		}
	}
	return out
}

// AnimalHealthAlerts runs the vaccine and deworming checks over every animal.
// Each check only fires when its date is present.
func AnimalHealthAlerts(animals []models.Animal, now time.Time, windowDays int) []string {
	var out []string
	for _, animal := range animals {
		if animal.NextVaccineDate != "" {
			switch state, days := checkDue(animal.NextVaccineDate, now, windowDays); state {
			case dueOverdue:
				out = append(out, fmt.Sprintf("URGENT HEALTH: vaccine overdue for '%s' (%s)! Due date: %s",
					animal.ID, animal.Species, animal.NextVaccineDate))
			case dueSoon:
				out = append(out, fmt.Sprintf("HEALTH ALERT: vaccine due for '%s' (%s) by %s (in %d days).",
					animal.ID, animal.Species, animal.NextVaccineDate, days))
			}
		}
		if animal.NextDewormDate != "" {
			switch state, days := checkDue(animal.NextDewormDate, now, windowDays); state {
			case dueOverdue:
				out = append(out, fmt.Sprintf("URGENT HEALTH: deworming overdue for '%s' (%s)! Due date: %s",
					animal.ID, animal.Species, animal.NextDewormDate))
			case dueSoon:
				out = append(out, fmt.Sprintf("HEALTH ALERT: deworming due for '%s' (%s) by %s (in %d days).",
					animal.ID, animal.Species, animal.NextDewormDate, days))
			}
		}
	}
	return out
}

// CropAlerts runs the sowing and harvest checks. Sowing only concerns plots
// still in preparation; harvest only concerns plots still growing. Status
// comparisons ignore case.
func CropAlerts(crops []models.Crop, now time.Time, harvestWindowDays, sowingWindowDays int) []string {
	var out []string
	for _, crop := range crops {
		if crop.SowDate != "" && strings.EqualFold(crop.Status, models.CropStatusInPreparation) {
			switch state, days := checkDue(crop.SowDate, now, sowingWindowDays); state {
			case dueOverdue:
				out = append(out, fmt.Sprintf("URGENT CROP: sowing overdue for plot '%s' (%s). Planned sow date: %s",
					crop.PlotName, crop.CropType, crop.SowDate))
			case dueSoon:
				out = append(out, fmt.Sprintf("CROP ALERT: sowing imminent for plot '%s' (%s) on %s (in %d days).",
					crop.PlotName, crop.CropType, crop.SowDate, days))
			}
		}
		if crop.EstHarvestDate != "" && strings.EqualFold(crop.Status, models.CropStatusGrowing) {
			switch state, days := checkDue(crop.EstHarvestDate, now, harvestWindowDays); state {
			case dueOverdue:
				out = append(out, fmt.Sprintf("URGENT CROP: harvest overdue for plot '%s' (%s). Estimated date: %s",
					crop.PlotName, crop.CropType, crop.EstHarvestDate))
			case dueSoon:
				out = append(out, fmt.Sprintf("CROP ALERT: harvest approaching for plot '%s' (%s) by %s (in %d days).",
					crop.PlotName, crop.CropType, crop.EstHarvestDate, days))
			}
		}
	}
	return out
}

// TaskAlerts checks due dates on tasks that are still in progress.
func TaskAlerts(tasks []models.Task, now time.Time, windowDays int) []string {
	var out []string
	for _, task := range tasks {
		if !strings.EqualFold(task.Status, models.TaskStatusInProgress) {
			continue
		}
		if task.DueDate == "" {
			continue
		}
		assignee := task.AssignedWorkerName
		if assignee == "" {
			assignee = models.UnassignedWorker
		}
		switch state, days := checkDue(task.DueDate, now, windowDays); state {
		case dueOverdue:
			out = append(out, fmt.Sprintf("URGENT TASK: task '%s' is overdue! Assigned to '%s'. Due date: %s",
				task.Name, assignee, task.DueDate))
		case dueSoon:
			out = append(out, fmt.Sprintf("TASK ALERT: task '%s' falls due on %s (in %d days). Assigned to '%s'.",
				task.Name, task.DueDate, days, assignee))
		}
	}
	return out
}

// EquipmentAlerts checks the next-maintenance date on every item that has one.
func EquipmentAlerts(equipment []models.Equipment, now time.Time, windowDays int) []string {
	var out []string
	for _, eq := range equipment {
		if eq.NextMaintenanceDate == "" {
			continue
		}
		switch state, days := checkDue(eq.NextMaintenanceDate, now, windowDays); state {
		case dueOverdue:
			out = append(out, fmt.Sprintf("URGENT EQUIPMENT: maintenance overdue for '%s'! Planned date: %s",
				eq.Name, eq.NextMaintenanceDate))
		case dueSoon:
			out = append(out, fmt.Sprintf("EQUIPMENT ALERT: maintenance due for '%s' by %s (in %d days).",
				eq.Name, eq.NextMaintenanceDate, days))
		}
	}
	return out
}
