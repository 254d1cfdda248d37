package models

// MaintenanceEntry is one line of an equipment maintenance log. Entries are
// append-only; a positive Cost posts a matching expense transaction.
type MaintenanceEntry struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// Equipment is a machine or tool owned by the farm. Names are unique ignoring
// case. NextMaintenanceDate drives the maintenance alerts; empty disables
// them for this item.
type Equipment struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	Type                string             `json:"type"`
	PurchaseDate        string             `json:"purchase_date"`
	PurchaseCost        float64            `json:"purchase_cost"`
	Condition           string             `json:"condition"`
	NextMaintenanceDate string             `json:"next_maintenance_date,omitempty"`
	MaintenanceHistory  []MaintenanceEntry `json:"maintenance_history"`
	AddedAt             string             `json:"added_at"`
}

// EquipmentUpdate carries the fields of a partial equipment update.
type EquipmentUpdate struct {
	Name                *string  `json:"name"`
	Type                *string  `json:"type"`
	PurchaseDate        *string  `json:"purchase_date"`
	PurchaseCost        *float64 `json:"purchase_cost"`
	Condition           *string  `json:"condition"`
	NextMaintenanceDate *string  `json:"next_maintenance_date"`
}
