package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/routes"
	"gorm.io/gorm"
)

// NewTestDB opens an isolated in-memory database with the full schema
// migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.FavoriteItem{},
		&models.Rating{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.StoredFile{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// NewRouter builds a gin engine with all application routes registered.
func NewRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r
}

// DoJSON performs a request with an optional JSON body and optional headers.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// SeedProduct inserts a product and returns it.
func SeedProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	if p.Name == "" {
		p.Name = "Test Watch"
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}
