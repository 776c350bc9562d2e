package cartControllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/testutil"
)

type cartResponse struct {
	Products []models.CartItem `json:"products"`
	Removed  int               `json:"removed"`
	Dropped  int               `json:"dropped"`
}

func TestAddOneAccumulatesQuantity(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p := testutil.SeedProduct(t, db, models.Product{Name: "Diver", Price: 250})

	add := map[string]interface{}{"userId": "user-1", "productId": p.ID, "quantity": 2}
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("first add: got status %d (%s)", w.Code, w.Body.String())
	}

	w = testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second add: got status %d", w.Code)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, "/products/cart/user-1", nil, nil)
	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if len(resp.Products) != 1 {
		t.Fatalf("expected a single line item, got %d", len(resp.Products))
	}
	if resp.Products[0].Quantity != 4 {
		t.Fatalf("expected accumulated quantity 4, got %d", resp.Products[0].Quantity)
	}
}

func TestAddOneUnknownProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	add := map[string]interface{}{"userId": "user-1", "productId": 424242, "quantity": 1}
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown product: got status %d, want 400", w.Code)
	}
}

func TestQuantityDeltaRemovesAtZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p := testutil.SeedProduct(t, db, models.Product{Name: "Pilot", Price: 300})

	add := map[string]interface{}{"userId": "user-1", "productId": p.ID, "quantity": 2}
	testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)

	delta := map[string]interface{}{"productId": p.ID, "delta": -2}
	w := testutil.DoJSON(t, r, http.MethodPut, "/products/cart/user-1", delta, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delta: got status %d (%s)", w.Code, w.Body.String())
	}

	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if len(resp.Products) != 0 {
		t.Fatalf("expected empty cart after delta to zero, got %d items", len(resp.Products))
	}
}

func TestQuantityDeltaMissingCartIsEmptyResult(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	delta := map[string]interface{}{"productId": 1, "delta": -1}
	w := testutil.DoJSON(t, r, http.MethodPut, "/products/cart/ghost-user", delta, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("missing cart: got status %d, want 200 with empty result", w.Code)
	}
	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if len(resp.Products) != 0 {
		t.Fatalf("missing cart: expected empty products, got %d", len(resp.Products))
	}
}

func TestMergeCartSemantics(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p1 := testutil.SeedProduct(t, db, models.Product{Name: "One", Price: 10})
	p2 := testutil.SeedProduct(t, db, models.Product{Name: "Two", Price: 20})
	p3 := testutil.SeedProduct(t, db, models.Product{Name: "Three", Price: 30})

	add := map[string]interface{}{"userId": "user-1", "productId": p1.ID, "quantity": 1}
	testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)

	merge := []map[string]interface{}{
		{"id": p1.ID, "quantity": 5},  // present: overwrite
		{"id": p2.ID, "quantity": 3},  // absent: append
		{"id": p3.ID, "quantity": -1}, // dropped
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/cart/all/user-1", merge, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("merge: got status %d (%s)", w.Code, w.Body.String())
	}

	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if len(resp.Products) != 2 {
		t.Fatalf("merge: got %d items, want 2", len(resp.Products))
	}
	byProduct := map[uint]int{}
	for _, item := range resp.Products {
		byProduct[item.ProductID] = item.Quantity
	}
	if byProduct[p1.ID] != 5 {
		t.Fatalf("merge: product %d quantity %d, want overwrite to 5", p1.ID, byProduct[p1.ID])
	}
	if byProduct[p2.ID] != 3 {
		t.Fatalf("merge: product %d quantity %d, want append with 3", p2.ID, byProduct[p2.ID])
	}
	if _, ok := byProduct[p3.ID]; ok {
		t.Fatal("merge: negative-quantity entry must be dropped")
	}
}

func TestReplaceCartDropsUnknownProducts(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p := testutil.SeedProduct(t, db, models.Product{Name: "Real", Price: 10})

	entries := []map[string]interface{}{
		{"productId": p.ID, "quantity": 2},
		{"productId": 999999, "quantity": 1},
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/cart/user-1", entries, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("replace: got status %d (%s)", w.Code, w.Body.String())
	}

	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if resp.Dropped != 1 {
		t.Fatalf("replace: dropped %d, want 1", resp.Dropped)
	}
	if len(resp.Products) != 1 || resp.Products[0].ProductID != p.ID {
		t.Fatalf("replace: got %+v, want only the real product", resp.Products)
	}
}

func TestReplaceCartRejectsNonList(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/products/cart/user-1",
		map[string]interface{}{"productId": 1, "quantity": 1}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-list payload: got status %d, want 400", w.Code)
	}
}

func TestGetCartPrunesDanglingReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p1 := testutil.SeedProduct(t, db, models.Product{Name: "Keeps", Price: 10})
	p2 := testutil.SeedProduct(t, db, models.Product{Name: "Goes", Price: 20})

	for _, p := range []models.Product{p1, p2} {
		add := map[string]interface{}{"userId": "user-1", "productId": p.ID, "quantity": 1}
		testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)
	}

	if err := db.Delete(&models.Product{}, p2.ID).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/products/cart/user-1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: got status %d", w.Code)
	}

	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if resp.Removed != 1 {
		t.Fatalf("expected 1 pruned entry, got %d", resp.Removed)
	}
	if len(resp.Products) != 1 || resp.Products[0].ProductID != p1.ID {
		t.Fatalf("expected only the surviving product, got %+v", resp.Products)
	}

	// The pruned entry is gone from the store too, not just the response.
	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count cart items: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted cart item after pruning, got %d", count)
	}
}

func TestCartIsPerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	p := testutil.SeedProduct(t, db, models.Product{Name: "Shared", Price: 10})

	for i := 1; i <= 2; i++ {
		add := map[string]interface{}{
			"userId":    fmt.Sprintf("user-%d", i),
			"productId": p.ID,
			"quantity":  i,
		}
		testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/products/cart/user-2", nil, nil)
	var resp cartResponse
	testutil.Decode(t, w, &resp)
	if len(resp.Products) != 1 || resp.Products[0].Quantity != 2 {
		t.Fatalf("user-2 cart: got %+v, want a single line with quantity 2", resp.Products)
	}
}
