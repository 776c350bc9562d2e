package orderControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/testutil"
)

func TestOrderFeedBroadcast(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/products/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial order feed: %v", err)
	}
	defer conn.Close()

	p := testutil.SeedProduct(t, db, models.Product{Name: "Diver", Price: 150, CountInStock: 3})
	add := map[string]interface{}{"userId": "user-1", "productId": p.ID, "quantity": 1}
	testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)

	checkout := map[string]interface{}{
		"userId":          "user-1",
		"totalPrice":      150.0,
		"paymentMethod":   "Cash on Delivery",
		"shippingAddress": shippingAddress(),
	}
	if w := testutil.DoJSON(t, r, http.MethodPost, "/products/checkout", checkout, nil); w.Code != http.StatusCreated {
		t.Fatalf("checkout: got status %d (%s)", w.Code, w.Body.String())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		t.Fatalf("decode broadcast %q: %v", data, err)
	}
	if order.UserID != "user-1" {
		t.Fatalf("broadcast order for %q, want user-1", order.UserID)
	}
	if order.TotalPrice != 150 {
		t.Fatalf("broadcast total %f, want 150", order.TotalPrice)
	}
}
