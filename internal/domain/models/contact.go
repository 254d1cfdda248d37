package models

// ContactType splits the address book into the two sides of the business.
type ContactType string

const (
	ContactSupplier ContactType = "supplier"
	ContactCustomer ContactType = "customer"
)

// Contact is a supplier or customer. The (CompanyName, ContactType) pair is
// unique ignoring case, so the same company may appear once on each side.
type Contact struct {
	ID          int         `json:"id"`
	CompanyName string      `json:"company_name"`
	ContactType ContactType `json:"contact_type"`
	Person      string      `json:"contact_person,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
	Address     string      `json:"address,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	AddedAt     string      `json:"added_at"`
}

// ContactUpdate carries the fields of a partial contact update.
type ContactUpdate struct {
	CompanyName *string `json:"company_name"`
	ContactType *string `json:"contact_type"`
	Person      *string `json:"contact_person"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}
