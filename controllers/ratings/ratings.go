package ratingsControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type RatingInput struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// callerFromCookie authenticates rating requests from the session cookie set
// at login.
func callerFromCookie(c *gin.Context) (string, bool) {
	token, err := c.Cookie("token")
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
		return "", false
	}
	userID, err := utils.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
		return "", false
	}
	return userID, true
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

// UpsertRating creates or overwrites the caller's rating for a product. A user
// has at most one rating per product.
// PATCH /products/:id/ratings
func UpsertRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		userID, ok := callerFromCookie(c)
		if !ok {
			return
		}

		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
			return
		}

		var rating models.Rating
		err := db.Where("product_id = ? AND user_id = ?", productID, userID).First(&rating).Error
		if err == gorm.ErrRecordNotFound {
			rating = models.Rating{
				UserID:    userID,
				ProductID: productID,
				Rating:    input.Rating,
				Review:    input.Review,
			}
			if err := db.Create(&rating).Error; err != nil {
				utils.StoreError(c, "Failed to save rating", err)
				return
			}
			c.JSON(http.StatusCreated, rating)
			return
		}
		if err != nil {
			utils.StoreError(c, "Failed to fetch rating", err)
			return
		}

		rating.Rating = input.Rating
		if input.Review != "" {
			rating.Review = input.Review
		}
		if err := db.Save(&rating).Error; err != nil {
			utils.StoreError(c, "Failed to save rating", err)
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}

// GetRatings lists a product's ratings with their arithmetic mean.
// GET /products/:id/ratings
func GetRatings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		var ratings []models.Rating
		if err := db.Where("product_id = ?", productID).Find(&ratings).Error; err != nil {
			utils.StoreError(c, "Failed to fetch ratings", err)
			return
		}
		if len(ratings) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No ratings found"})
			return
		}

		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		average := float64(sum) / float64(len(ratings))

		c.JSON(http.StatusOK, gin.H{"ratings": ratings, "average": average})
	}
}

// GetOwnRating returns the caller's rating for a product.
// GET /products/:id/rating
func GetOwnRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		userID, ok := callerFromCookie(c)
		if !ok {
			return
		}

		var rating models.Rating
		err := db.Where("product_id = ? AND user_id = ?", productID, userID).First(&rating).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No rating found"})
			return
		}
		if err != nil {
			utils.StoreError(c, "Failed to fetch rating", err)
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}
