package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
)

// ErrNotFound indicates no contact carries the given id.
var ErrNotFound = errors.New("contact not found")

// ErrDuplicateContact indicates the (company, type) pair already exists,
// ignoring case.
var ErrDuplicateContact = errors.New("contact already exists")

// ErrInvalidType indicates a contact type other than supplier or customer.
var ErrInvalidType = errors.New("contact type must be supplier or customer")

// Store is the slice of the record store holding contacts.
type Store interface {
	LoadContacts(ctx context.Context) (flatfile.Sequenced[models.Contact], error)
	SaveContacts(ctx context.Context, col flatfile.Sequenced[models.Contact]) error
}

// Service manages the supplier and customer address book.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a contact service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

func validType(t models.ContactType) bool {
	return t == models.ContactSupplier || t == models.ContactCustomer
}

func maxContactID(items []models.Contact) int {
	max := 0
	for _, c := range items {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// Add registers a new contact and returns its assigned id. The same company
// may appear once as a supplier and once as a customer.
func (s *Service) Add(ctx context.Context, contact models.Contact) (int, error) {
	if !validType(contact.ContactType) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, contact.ContactType)
	}

	col, err := s.store.LoadContacts(ctx)
	if err != nil {
		return 0, fmt.Errorf("load contacts: %w", err)
	}

	for _, existing := range col.Items {
		if strings.EqualFold(existing.CompanyName, contact.CompanyName) &&
			strings.EqualFold(string(existing.ContactType), string(contact.ContactType)) {
			return 0, fmt.Errorf("%w: %s %q", ErrDuplicateContact, contact.ContactType, contact.CompanyName)
		}
	}

	contact.ID = col.Allocate(maxContactID(col.Items))
	contact.AddedAt = s.now().Format(models.TimestampLayout)
	col.Items = append(col.Items, contact)

	if err := s.store.SaveContacts(ctx, col); err != nil {
		return 0, fmt.Errorf("save contacts: %w", err)
	}
	s.logger.Info("contact added",
		zap.Int("id", contact.ID),
		zap.String("company", contact.CompanyName),
		zap.String("type", string(contact.ContactType)))
	return contact.ID, nil
}

// List returns contacts, optionally filtered by type. An empty filter returns
// everything.
func (s *Service) List(ctx context.Context, typeFilter string) ([]models.Contact, error) {
	col, err := s.store.LoadContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	if typeFilter == "" {
		return col.Items, nil
	}

	filtered := []models.Contact{}
	for _, contact := range col.Items {
		if strings.EqualFold(string(contact.ContactType), typeFilter) {
			filtered = append(filtered, contact)
		}
	}
	return filtered, nil
}

// Update applies the non-nil fields of the update to the contact with the
// given id.
func (s *Service) Update(ctx context.Context, id int, update models.ContactUpdate) error {
	col, err := s.store.LoadContacts(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	for i := range col.Items {
		if col.Items[i].ID != id {
			continue
		}
		if update.CompanyName != nil {
			col.Items[i].CompanyName = *update.CompanyName
		}
		if update.ContactType != nil {
			t := models.ContactType(strings.ToLower(*update.ContactType))
			if !validType(t) {
				return fmt.Errorf("%w: %q", ErrInvalidType, *update.ContactType)
			}
			col.Items[i].ContactType = t
		}
		if update.Person != nil {
			col.Items[i].Person = *update.Person
		}
		if update.Phone != nil {
			col.Items[i].Phone = *update.Phone
		}
		if update.Email != nil {
			col.Items[i].Email = *update.Email
		}
		if update.Address != nil {
			col.Items[i].Address = *update.Address
		}
		if update.Notes != nil {
			col.Items[i].Notes = *update.Notes
		}
		if err := s.store.SaveContacts(ctx, col); err != nil {
			return fmt.Errorf("save contacts: %w", err)
		}
		s.logger.Info("contact updated", zap.Int("id", id))
		return nil
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Delete removes the contact with the given id.
func (s *Service) Delete(ctx context.Context, id int) error {
	col, err := s.store.LoadContacts(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	kept := col.Items[:0]
	for _, contact := range col.Items {
		if contact.ID != id {
			kept = append(kept, contact)
		}
	}
	if len(kept) == len(col.Items) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	col.Items = kept

	if err := s.store.SaveContacts(ctx, col); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	s.logger.Info("contact deleted", zap.Int("id", id))
	return nil
}
