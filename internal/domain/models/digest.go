package models

import "time"

// FarmStats are the quick counters shown on the dashboard.
type FarmStats struct {
	TotalAnimals    int `json:"total_animals"`
	TotalCrops      int `json:"total_crops"`
	TotalWorkers    int `json:"total_workers"`
	TasksInProgress int `json:"tasks_in_progress"`
	TotalEquipment  int `json:"total_equipment"`
	TotalSuppliers  int `json:"total_suppliers"`
	TotalCustomers  int `json:"total_customers"`
}

// Digest is the daily summary pushed to the notification webhook and, when
// configured, archived to MongoDB and appended to the export spreadsheet.
type Digest struct {
	Date    string    `json:"date"`
	Balance float64   `json:"balance"`
	Stats   FarmStats `json:"stats"`
	Alerts  []string  `json:"alerts"`
}

// FarmSnapshot is the MongoDB archive document derived from a Digest.
type FarmSnapshot struct {
	Date            time.Time `bson:"date" json:"date"`
	Balance         float64   `bson:"balance" json:"balance"`
	TotalAnimals    int       `bson:"total_animals" json:"total_animals"`
	TotalCrops      int       `bson:"total_crops" json:"total_crops"`
	TotalWorkers    int       `bson:"total_workers" json:"total_workers"`
	TasksInProgress int       `bson:"tasks_in_progress" json:"tasks_in_progress"`
	TotalEquipment  int       `bson:"total_equipment" json:"total_equipment"`
	TotalSuppliers  int       `bson:"total_suppliers" json:"total_suppliers"`
	TotalCustomers  int       `bson:"total_customers" json:"total_customers"`
	AlertCount      int       `bson:"alert_count" json:"alert_count"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
