package favoritesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type FavoriteInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

func findOrCreateFavorites(db *gorm.DB, userID string) (models.Favorite, error) {
	var fav models.Favorite
	err := db.Where("user_id = ?", userID).First(&fav).Error
	if err == gorm.ErrRecordNotFound {
		fav = models.Favorite{UserID: userID}
		if err := db.Create(&fav).Error; err != nil {
			return fav, err
		}
		return fav, nil
	}
	return fav, err
}

// AddFavorite bookmarks a product. Adding a product twice is rejected rather
// than duplicated.
// POST /products/favorites/:userId
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fav, err := findOrCreateFavorites(db, userID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch favorites", err)
			return
		}

		var existing models.FavoriteItem
		err = db.Where("favorite_id = ? AND product_id = ?", fav.ID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is already in favorites"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			utils.StoreError(c, "Failed to fetch favorites", err)
			return
		}

		item := models.FavoriteItem{FavoriteID: fav.ID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil {
			utils.StoreError(c, "Failed to add favorite", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added to favorites"})
	}
}

// RemoveFavorite drops a bookmark, 404 when it was never there.
// DELETE /products/favorites/:userId
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var fav models.Favorite
		if err := db.Where("user_id = ?", userID).First(&fav).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in favorites"})
			return
		}

		result := db.Where("favorite_id = ? AND product_id = ?", fav.ID, input.ProductID).
			Delete(&models.FavoriteItem{})
		if result.Error != nil {
			utils.StoreError(c, "Failed to remove favorite", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites"})
	}
}

// IsFavorite reports membership. Absence of a list or entry is false, never an
// error.
// POST /products/isFavorite/:userId
func IsFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var fav models.Favorite
		if err := db.Where("user_id = ?", userID).First(&fav).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"isFavorite": false})
			return
		}

		var count int64
		if err := db.Model(&models.FavoriteItem{}).
			Where("favorite_id = ? AND product_id = ?", fav.ID, input.ProductID).
			Count(&count).Error; err != nil {
			utils.StoreError(c, "Failed to check favorites", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"isFavorite": count > 0})
	}
}

// GetFavorites lists the user's bookmarked products, populated.
// GET /products/favorites/:userId
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var fav models.Favorite
		err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&fav).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No favorite products found"})
			return
		}
		if err != nil {
			utils.StoreError(c, "Failed to fetch favorites", err)
			return
		}

		products := []models.Product{}
		for _, item := range fav.Items {
			if item.Product != nil {
				products = append(products, *item.Product)
			}
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No favorite products found"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
