package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Sortable columns exposed to clients. Anything else is rejected rather than
// interpolated into the order clause.
var sortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"brand":     "brand",
	"createdAt": "created_at",
}

// GetProducts lists the catalog with optional filters, sorting and paging.
// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sortBy := c.DefaultQuery("sortBy", "name")
		column, ok := sortColumns[sortBy]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sortBy field"})
			return
		}

		order := strings.ToLower(c.DefaultQuery("order", "asc"))
		if order != "asc" && order != "desc" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order, expected asc or desc"})
			return
		}

		limit := defaultLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			l, err := strconv.Atoi(limitStr)
			if err != nil || l < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = l
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		page := 1
		if pageStr := c.Query("page"); pageStr != "" {
			p, err := strconv.Atoi(pageStr)
			if err != nil || p < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			page = p
		}

		query := db.Model(&models.Product{})

		if brand := c.Query("brand"); brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if caseColor := c.Query("caseColor"); caseColor != "" {
			query = query.Where("case_color = ?", caseColor)
		}
		if dialColor := c.Query("dialColor"); dialColor != "" {
			query = query.Where("dial_color = ?", dialColor)
		}
		if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		orderClause := fmt.Sprintf("%s %s", column, order)
		if err := query.Order(orderClause).
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch products", err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
