package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kouassidev/ferme/internal/domain/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStore_DefaultsWhenFilesMissing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items, err := store.LoadStock(ctx)
	if err != nil {
		t.Fatalf("LoadStock: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty stock, got %d items", len(items))
	}

	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if ledger.Balance != 0 {
		t.Errorf("fresh ledger balance = %v, want 0", ledger.Balance)
	}
	if ledger.Transactions == nil || len(ledger.Transactions) != 0 {
		t.Errorf("fresh ledger transactions = %v, want empty slice", ledger.Transactions)
	}

	workers, err := store.LoadWorkers(ctx)
	if err != nil {
		t.Fatalf("LoadWorkers: %v", err)
	}
	if len(workers.Items) != 0 {
		t.Errorf("expected no workers, got %d", len(workers.Items))
	}
}

func TestStore_EmptyFileLoadsDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "stock.json"), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store, err := NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	items, err := store.LoadStock(context.Background())
	if err != nil {
		t.Fatalf("LoadStock: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty stock from blank file, got %d items", len(items))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []models.StockItem{
		{Name: "Corn", Quantity: 3, AlertThreshold: 5},
		{Name: "Fertilizer", Quantity: 40, AlertThreshold: 10},
	}
	if err := store.SaveStock(ctx, in); err != nil {
		t.Fatalf("SaveStock: %v", err)
	}

	out, err := store.LoadStock(ctx)
	if err != nil {
		t.Fatalf("LoadStock: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Corn" || out[1].Quantity != 40 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSequenced_Allocate(t *testing.T) {
	tests := []struct {
		name    string
		col     Sequenced[models.Worker]
		maxID   int
		want    int
		wantNxt int
	}{
		{
			name:    "fresh collection",
			col:     Sequenced[models.Worker]{},
			maxID:   0,
			want:    1,
			wantNxt: 2,
		},
		{
			name:    "counter ahead of items",
			col:     Sequenced[models.Worker]{NextID: 7},
			maxID:   3,
			want:    7,
			wantNxt: 8,
		},
		{
			name:    "legacy file without counter",
			col:     Sequenced[models.Worker]{},
			maxID:   4,
			want:    5,
			wantNxt: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.col.Allocate(tt.maxID)
			if got != tt.want {
				t.Errorf("Allocate() = %d, want %d", got, tt.want)
			}
			if tt.col.NextID != tt.wantNxt {
				t.Errorf("NextID after Allocate = %d, want %d", tt.col.NextID, tt.wantNxt)
			}
		})
	}
}

func TestSequenced_AllocateDoesNotReuseAfterDeletion(t *testing.T) {
	col := Sequenced[models.Worker]{}
	first := col.Allocate(0)
	second := col.Allocate(first)

	// Drop the record holding the highest id; the next allocation must still
	// move forward.
	third := col.Allocate(first)
	if third == second {
		t.Errorf("id %d reused after deletion", second)
	}
	if third != second+1 {
		t.Errorf("Allocate() = %d, want %d", third, second+1)
	}
}
