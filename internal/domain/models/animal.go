package models

// Animal is a single head of livestock. IDs are operator-chosen tags
// ("Sheep001", "Ox_A1") unique ignoring case. Optional dates are DateLayout
// strings; empty means not applicable.
type Animal struct {
	ID              string `json:"id"`
	Species         string `json:"species"`
	BirthDate       string `json:"birth_date"`
	Sex             string `json:"sex"`
	HealthStatus    string `json:"health_status"`
	NextVaccineDate string `json:"next_vaccine_date,omitempty"`
	NextDewormDate  string `json:"next_deworm_date,omitempty"`
	AddedAt         string `json:"added_at"`
}

// AnimalUpdate carries the fields of a partial animal update. Nil pointers
// leave the current value untouched; NextVaccineDate and NextDewormDate may
// be set to the empty string to clear them.
type AnimalUpdate struct {
	Species         *string `json:"species"`
	BirthDate       *string `json:"birth_date"`
	Sex             *string `json:"sex"`
	HealthStatus    *string `json:"health_status"`
	NextVaccineDate *string `json:"next_vaccine_date"`
	NextDewormDate  *string `json:"next_deworm_date"`
}
