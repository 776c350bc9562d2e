package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type CartEntryInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type MergeEntryInput struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type AddOneInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type DeltaInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Delta     int  `json:"delta" binding:"required"`
}

// findOrCreateCart returns the user's cart with items and products populated,
// creating an empty cart on first touch.
func findOrCreateCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

// loadItems re-reads a cart's items with their products populated.
func loadItems(db *gorm.DB, cartID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := db.Preload("Product").Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

// GetCart reads the populated cart, pruning entries whose product no longer
// resolves. Pruned entries are deleted from the store and counted in the
// response.
// GET /products/cart/:userId
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		kept := []models.CartItem{}
		removed := 0
		for _, item := range cart.Items {
			if item.Product == nil {
				// Product was deleted since the item was added.
				if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
					utils.StoreError(c, "Failed to prune cart", err)
					return
				}
				removed++
				continue
			}
			kept = append(kept, item)
		}

		c.JSON(http.StatusOK, gin.H{"products": kept, "removed": removed})
	}
}

// ReplaceCart overwrites the cart's item list with the given entries, keeping
// only those whose product resolves.
// POST /products/cart/:userId
func ReplaceCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var entries []CartEntryInput
		if err := c.ShouldBindJSON(&entries); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a list of {productId, quantity} entries"})
			return
		}

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		dropped := 0
		valid := []models.CartItem{}
		for _, entry := range entries {
			var product models.Product
			if err := db.First(&product, entry.ProductID).Error; err != nil {
				dropped++
				continue
			}
			valid = append(valid, models.CartItem{
				CartID:    cart.CartID,
				ProductID: entry.ProductID,
				Quantity:  entry.Quantity,
				AddedAt:   time.Now(),
			})
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			utils.StoreError(c, "Failed to replace cart", err)
			return
		}
		if len(valid) > 0 {
			if err := db.Create(&valid).Error; err != nil {
				utils.StoreError(c, "Failed to replace cart", err)
				return
			}
		}

		items, err := loadItems(db, cart.CartID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": items, "dropped": dropped})
	}
}

// MergeCart applies a bulk merge-set: positive quantities overwrite or append,
// zero and negative entries are dropped on the floor.
// POST /products/cart/all/:userId
func MergeCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var entries []MergeEntryInput
		if err := c.ShouldBindJSON(&entries); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a list of {id, quantity} entries"})
			return
		}

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		for _, entry := range entries {
			if entry.Quantity <= 0 {
				continue
			}

			var item models.CartItem
			err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, entry.ID).First(&item).Error
			if err == gorm.ErrRecordNotFound {
				item = models.CartItem{
					CartID:    cart.CartID,
					ProductID: entry.ID,
					Quantity:  entry.Quantity,
					AddedAt:   time.Now(),
				}
				if err := db.Create(&item).Error; err != nil {
					utils.StoreError(c, "Failed to update cart", err)
					return
				}
				continue
			}
			if err != nil {
				utils.StoreError(c, "Failed to fetch cart item", err)
				return
			}

			item.Quantity = entry.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				utils.StoreError(c, "Failed to update cart", err)
				return
			}
		}

		items, err := loadItems(db, cart.CartID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": items})
	}
}

// AddOne adds a quantity of a single product, accumulating onto an existing
// line instead of duplicating it.
// POST /products/cart/add/one
func AddOne(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddOneInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			utils.StoreError(c, "Failed to validate product", err)
			return
		}

		cart, err := findOrCreateCart(db, input.UserID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{
				CartID:    cart.CartID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				utils.StoreError(c, "Failed to add item to cart", err)
				return
			}
			c.JSON(http.StatusCreated, item)
			return
		}
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart item", err)
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			utils.StoreError(c, "Failed to update cart item", err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ApplyQuantityDelta applies a signed delta to one cart line. Driving the
// quantity to zero or below removes the line. A missing cart or line yields an
// empty result, not an error.
// PUT /products/cart/:userId
func ApplyQuantityDelta(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var input DeltaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"products": []models.CartItem{}})
				return
			}
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"products": []models.CartItem{}})
			return
		}
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart item", err)
			return
		}

		item.Quantity += input.Delta
		if item.Quantity <= 0 {
			if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				utils.StoreError(c, "Failed to remove cart item", err)
				return
			}
		} else {
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				utils.StoreError(c, "Failed to update cart item", err)
				return
			}
		}

		items, err := loadItems(db, cart.CartID)
		if err != nil {
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": items})
	}
}
