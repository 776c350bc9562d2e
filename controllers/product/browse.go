package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

const newArrivalCount = 8

// GetByBrand lists every product of one brand.
// GET /products/brand/:brand
func GetByBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brand := c.Param("brand")

		var products []models.Product
		if err := db.Where("brand = ?", brand).Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch products", err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// SearchProducts matches the keyword against name and description,
// case-insensitively.
// GET /products/search?keyword=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")
		if keyword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
			return
		}

		pattern := "%" + keyword + "%"
		var products []models.Product
		if err := db.
			Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
			Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to search products", err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetFeatured lists products carrying the featured class tag.
// GET /products/featured
func GetFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("class = ?", "featured").Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch featured products", err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetNewArrivals returns the most recently added products.
// GET /products/newArrival
func GetNewArrivals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Limit(newArrivalCount).Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch new arrivals", err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetByGender filters by the gender enum.
// GET /products/gender?gender=
func GetByGender(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gender := c.Query("gender")
		if !models.ValidGender(gender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gender, expected men, women or unisex"})
			return
		}

		var products []models.Product
		if err := db.Where("gender = ?", gender).Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch products", err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetUniqueFilters returns the distinct attribute values the storefront uses
// to build its filter panels.
// GET /products/unique-filters
func GetUniqueFilters(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		distinct := func(column string) ([]string, error) {
			var values []string
			err := db.Model(&models.Product{}).
				Where(column+" <> ''").
				Distinct().
				Order(column).
				Pluck(column, &values).Error
			return values, err
		}

		brands, err := distinct("brand")
		if err != nil {
			utils.StoreError(c, "Failed to fetch filters", err)
			return
		}
		categories, err := distinct("category")
		if err != nil {
			utils.StoreError(c, "Failed to fetch filters", err)
			return
		}
		caseColors, err := distinct("case_color")
		if err != nil {
			utils.StoreError(c, "Failed to fetch filters", err)
			return
		}
		dialColors, err := distinct("dial_color")
		if err != nil {
			utils.StoreError(c, "Failed to fetch filters", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"brands":     brands,
			"categories": categories,
			"caseColors": caseColors,
			"dialColors": dialColors,
		})
	}
}
