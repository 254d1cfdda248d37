package flatfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// Category file names inside the data directory. One file per record
// category; categories are independent and there are no cross-file
// transactions.
const (
	stockFile     = "stock.json"
	financeFile   = "finance.json"
	animalsFile   = "animals.json"
	cropsFile     = "crops.json"
	workersFile   = "workers.json"
	tasksFile     = "tasks.json"
	equipmentFile = "equipment.json"
	contactsFile  = "contacts.json"
)

// Sequenced wraps a collection whose records carry small integer ids handed
// out by a persisted monotonic counter. The counter lives in the same file as
// the items so an id is never reused after a deletion.
type Sequenced[T any] struct {
	NextID int `json:"next_id"`
	Items  []T `json:"items"`
}

// Allocate returns the next id and advances the counter. maxID is the largest
// id currently in Items; files written before the counter existed load with
// NextID zero and are healed here.
func (c *Sequenced[T]) Allocate(maxID int) int {
	if c.NextID <= maxID {
		c.NextID = maxID + 1
	}
	id := c.NextID
	c.NextID++
	return id
}

// Store persists each record category to its own JSON file with whole-file
// read and whole-file overwrite semantics. There is no locking: a second
// process writing the same files silently wins or loses whole saves.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore ensures the data directory exists and returns a store rooted there.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir == "" {
		return nil, errors.New("data directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// loadFile decodes the named file into v. A missing or empty file leaves v at
// its caller-supplied default and is not an error.
func (s *Store) loadFile(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	s.logger.Debug("category saved", zap.String("file", name))
	return nil
}

// LoadStock returns every stock item, oldest first.
func (s *Store) LoadStock(ctx context.Context) ([]models.StockItem, error) {
	items := []models.StockItem{}
	if err := s.loadFile(stockFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveStock overwrites the stock category.
func (s *Store) SaveStock(ctx context.Context, items []models.StockItem) error {
	return s.saveFile(stockFile, items)
}

// LoadLedger returns the finance ledger. A fresh installation yields an empty
// transaction list and a zero balance.
func (s *Store) LoadLedger(ctx context.Context) (models.Ledger, error) {
	ledger := models.Ledger{Transactions: []models.Transaction{}}
	if err := s.loadFile(financeFile, &ledger); err != nil {
		return models.Ledger{}, err
	}
	if ledger.Transactions == nil {
		ledger.Transactions = []models.Transaction{}
	}
	return ledger, nil
}

// SaveLedger overwrites the finance category, transactions and balance in one
// write.
func (s *Store) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	return s.saveFile(financeFile, ledger)
}

// LoadAnimals returns every animal, oldest first.
func (s *Store) LoadAnimals(ctx context.Context) ([]models.Animal, error) {
	animals := []models.Animal{}
	if err := s.loadFile(animalsFile, &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// SaveAnimals overwrites the animals category.
func (s *Store) SaveAnimals(ctx context.Context, animals []models.Animal) error {
	return s.saveFile(animalsFile, animals)
}

// LoadCrops returns every crop, oldest first.
func (s *Store) LoadCrops(ctx context.Context) ([]models.Crop, error) {
	crops := []models.Crop{}
	if err := s.loadFile(cropsFile, &crops); err != nil {
		return nil, err
	}
	return crops, nil
}

// SaveCrops overwrites the crops category.
func (s *Store) SaveCrops(ctx context.Context, crops []models.Crop) error {
	return s.saveFile(cropsFile, crops)
}

// LoadWorkers returns the worker collection with its id counter.
func (s *Store) LoadWorkers(ctx context.Context) (Sequenced[models.Worker], error) {
	col := Sequenced[models.Worker]{Items: []models.Worker{}}
	if err := s.loadFile(workersFile, &col); err != nil {
		return Sequenced[models.Worker]{}, err
	}
	return col, nil
}

// SaveWorkers overwrites the workers category.
func (s *Store) SaveWorkers(ctx context.Context, col Sequenced[models.Worker]) error {
	return s.saveFile(workersFile, col)
}

// LoadTasks returns the task collection with its id counter.
func (s *Store) LoadTasks(ctx context.Context) (Sequenced[models.Task], error) {
	col := Sequenced[models.Task]{Items: []models.Task{}}
	if err := s.loadFile(tasksFile, &col); err != nil {
		return Sequenced[models.Task]{}, err
	}
	return col, nil
}

// SaveTasks overwrites the tasks category.
func (s *Store) SaveTasks(ctx context.Context, col Sequenced[models.Task]) error {
	return s.saveFile(tasksFile, col)
}

// LoadEquipment returns the equipment collection with its id counter.
func (s *Store) LoadEquipment(ctx context.Context) (Sequenced[models.Equipment], error) {
	col := Sequenced[models.Equipment]{Items: []models.Equipment{}}
	if err := s.loadFile(equipmentFile, &col); err != nil {
		return Sequenced[models.Equipment]{}, err
	}
	return col, nil
}

// SaveEquipment overwrites the equipment category.
func (s *Store) SaveEquipment(ctx context.Context, col Sequenced[models.Equipment]) error {
	return s.saveFile(equipmentFile, col)
}

// LoadContacts returns the contact collection with its id counter.
func (s *Store) LoadContacts(ctx context.Context) (Sequenced[models.Contact], error) {
	col := Sequenced[models.Contact]{Items: []models.Contact{}}
	if err := s.loadFile(contactsFile, &col); err != nil {
		return Sequenced[models.Contact]{}, err
	}
	return col, nil
}

// SaveContacts overwrites the contacts category.
func (s *Store) SaveContacts(ctx context.Context, col Sequenced[models.Contact]) error {
	return s.saveFile(contactsFile, col)
}
