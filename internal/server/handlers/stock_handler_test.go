package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kouassidev/ferme/internal/domain/models"
	"github.com/kouassidev/ferme/internal/service/inventory"
)

type memStockStore struct {
	items []models.StockItem
}

func (m *memStockStore) LoadStock(ctx context.Context) ([]models.StockItem, error) {
	out := make([]models.StockItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memStockStore) SaveStock(ctx context.Context, items []models.StockItem) error {
	m.items = items
	return nil
}

type memRecorder struct {
	recorded []models.Transaction
}

func (m *memRecorder) RecordTransaction(ctx context.Context, kind models.TransactionKind, amount float64, description string) (models.Transaction, error) {
	txn := models.Transaction{Kind: kind, Amount: amount, Description: description}
	m.recorded = append(m.recorded, txn)
	return txn, nil
}

func newStockRouter(store *memStockStore, recorder *memRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStockHandler(inventory.NewService(store, recorder, nil), nil)

	r := gin.New()
	r.GET("/stock", h.List)
	r.PUT("/stock", h.Upsert)
	r.POST("/stock/sales", h.RecordSale)
	r.POST("/stock/purchases", h.RecordPurchase)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStockHandler_Upsert(t *testing.T) {
	store := &memStockStore{}
	r := newStockRouter(store, &memRecorder{})

	w := doJSON(t, r, http.MethodPut, "/stock", `{"name":"Feed","quantity":40,"alert_threshold":10}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if len(store.items) != 1 || store.items[0].Quantity != 40 {
		t.Errorf("store = %+v", store.items)
	}

	if w := doJSON(t, r, http.MethodPut, "/stock", `{"quantity":40}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", w.Code)
	}
}

func TestStockHandler_RecordSale(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid sale", `{"name":"Feed","quantity":5,"unit_price":2}`, http.StatusCreated},
		{"unknown item", `{"name":"Gravel","quantity":5}`, http.StatusNotFound},
		{"insufficient stock", `{"name":"Feed","quantity":500}`, http.StatusConflict},
		{"zero quantity", `{"name":"Feed","quantity":0}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStockStore{items: []models.StockItem{{Name: "Feed", Quantity: 40, AlertThreshold: 10}}}
			recorder := &memRecorder{}
			r := newStockRouter(store, recorder)

			w := doJSON(t, r, http.MethodPost, "/stock/sales", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated && len(recorder.recorded) != 1 {
				t.Errorf("recorded %d transactions, want 1", len(recorder.recorded))
			}
			if tt.wantStatus != http.StatusCreated && len(recorder.recorded) != 0 {
				t.Errorf("failed sale posted transactions: %v", recorder.recorded)
			}
		})
	}
}

func TestStockHandler_RecordPurchase(t *testing.T) {
	store := &memStockStore{}
	recorder := &memRecorder{}
	r := newStockRouter(store, recorder)

	w := doJSON(t, r, http.MethodPost, "/stock/purchases",
		`{"name":"Seed corn","quantity":20,"unit_price":1.5,"new_item":true,"alert_threshold":5,"supplier":"AgriPlus"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if len(store.items) != 1 || store.items[0].Quantity != 20 {
		t.Errorf("store = %+v", store.items)
	}
	if len(recorder.recorded) != 1 || recorder.recorded[0].Amount != 30 {
		t.Errorf("recorded = %+v, want one expense of 30", recorder.recorded)
	}
}
