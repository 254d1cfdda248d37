package models

// Crop statuses the alert checks key on. Status is free text otherwise and is
// always compared ignoring case.
const (
	CropStatusGrowing       = "growing"
	CropStatusInPreparation = "in preparation"
)

// Crop is a planted (or planned) plot. Plot names are unique ignoring case.
// Quantity is surface or plant count depending on Unit; nil means unknown.
type Crop struct {
	PlotName       string   `json:"plot_name"`
	CropType       string   `json:"crop_type"`
	SowDate        string   `json:"sow_date"`
	EstHarvestDate string   `json:"estimated_harvest_date,omitempty"`
	Status         string   `json:"status"`
	Quantity       *float64 `json:"quantity_or_area,omitempty"`
	Unit           string   `json:"unit"`
	AddedAt        string   `json:"added_at"`
}

// CropUpdate carries the fields of a partial crop update.
type CropUpdate struct {
	CropType       *string  `json:"crop_type"`
	SowDate        *string  `json:"sow_date"`
	EstHarvestDate *string  `json:"estimated_harvest_date"`
	Status         *string  `json:"status"`
	Quantity       *float64 `json:"quantity_or_area"`
	Unit           *string  `json:"unit"`
}
