package couponControllers_test

import (
	"net/http"
	"testing"

	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/testutil"
)

func TestApplyCouponBurnsUsage(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	coupon := models.Coupon{Code: "SAVE10", Discount: 10, Valid: true, MaxUsage: 2}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	body := map[string]string{"code": "SAVE10"}
	for i := 0; i < 2; i++ {
		w := testutil.DoJSON(t, r, http.MethodPost, "/products/coupon/apply", body, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("apply %d: got status %d (%s)", i+1, w.Code, w.Body.String())
		}
	}

	// Third use is past the limit.
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/coupon/apply", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("exhausted coupon: got status %d, want 400", w.Code)
	}

	if err := db.First(&coupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon: %v", err)
	}
	if coupon.UsedCount != 2 {
		t.Fatalf("used count %d, want 2", coupon.UsedCount)
	}
}

func TestApplyCouponUnknownCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoJSON(t, r, http.MethodPost, "/products/coupon/apply",
		map[string]string{"code": "NOPE"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown code: got status %d, want 404", w.Code)
	}
}

func TestApplyCouponInvalidated(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	coupon := models.Coupon{Code: "OLD", Discount: 25, Valid: false, MaxUsage: 10}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/products/coupon/apply",
		map[string]string{"code": "OLD"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalidated coupon: got status %d, want 400", w.Code)
	}
}

func TestCheckoutWithCouponDiscountsTotal(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	coupon := models.Coupon{Code: "HALF", Discount: 50, Valid: true, MaxUsage: 1}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	p := testutil.SeedProduct(t, db, models.Product{Name: "Diver", Price: 200, CountInStock: 5})
	add := map[string]interface{}{"userId": "user-1", "productId": p.ID, "quantity": 1}
	testutil.DoJSON(t, r, http.MethodPost, "/products/cart/add/one", add, nil)

	checkout := map[string]interface{}{
		"userId":        "user-1",
		"totalPrice":    200.0,
		"paymentMethod": "Cash on Delivery",
		"couponCode":    "HALF",
		"shippingAddress": map[string]interface{}{
			"fullName":   "John Doe",
			"address":    "1 Main St",
			"city":       "Cairo",
			"postalCode": "11311",
			"country":    "EG",
			"phone":      "+20100000000",
		},
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/products/checkout", checkout, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout with coupon: got status %d (%s)", w.Code, w.Body.String())
	}

	var order models.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.TotalPrice != 100 {
		t.Fatalf("discounted total %f, want 100", order.TotalPrice)
	}

	if err := db.First(&coupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon: %v", err)
	}
	if coupon.UsedCount != 1 {
		t.Fatalf("coupon used count %d, want 1", coupon.UsedCount)
	}
}
