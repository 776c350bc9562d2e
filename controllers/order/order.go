package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	UserID          string                 `json:"userId" binding:"required"`
	TotalPrice      *float64               `json:"totalPrice" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	CouponCode      string                 `json:"couponCode"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusCompleted:
		return models.OrderStatusCompleted, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch models.PaymentMethod(method) {
	case models.PaymentCashOnDelivery:
		return models.PaymentCashOnDelivery, nil
	case models.PaymentCard:
		return models.PaymentCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

func validShippingAddress(a models.ShippingAddress) bool {
	return a.FullName != "" && a.Address != "" && a.City != "" &&
		a.PostalCode != "" && a.Country != "" && a.Phone != ""
}

// CreateCheckout snapshots the user's cart into an immutable order, decrements
// stock for each line and empties the cart. The whole sequence runs in one
// transaction so a failed checkout leaves no half-written order behind.
// POST /products/checkout
func CreateCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		paymentMethod, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validShippingAddress(req.ShippingAddress) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete shipping address"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items.Product").Where("user_id = ?", req.UserID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			utils.StoreError(c, "Failed to fetch cart", err)
			return
		}

		// Dangling lines are skipped here the same way the cart read prunes them.
		lines := []models.CartItem{}
		for _, item := range cart.Items {
			if item.Product != nil {
				lines = append(lines, item)
			}
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		total := *req.TotalPrice
		var order models.Order

		txErr := db.Transaction(func(tx *gorm.DB) error {
			if req.CouponCode != "" {
				var coupon models.Coupon
				if err := tx.Where("code = ?", req.CouponCode).First(&coupon).Error; err != nil {
					return errors.New("invalid coupon code")
				}
				if !coupon.Valid || coupon.UsedCount >= coupon.MaxUsage {
					return errors.New("coupon is no longer valid")
				}
				coupon.UsedCount++
				if err := tx.Save(&coupon).Error; err != nil {
					return err
				}
				total = total * (1 - coupon.Discount/100)
			}

			orderItems := make([]models.OrderItem, 0, len(lines))
			for _, item := range lines {
				orderItems = append(orderItems, models.OrderItem{
					ProductID: item.ProductID,
					Name:      item.Product.Name,
					Price:     item.Product.Price,
					Quantity:  item.Quantity,
				})

				// Best-effort decrement, no sufficiency check.
				item.Product.CountInStock -= item.Quantity
				if err := tx.Save(item.Product).Error; err != nil {
					return err
				}
			}

			order = models.Order{
				UserID:          req.UserID,
				Items:           orderItems,
				TotalPrice:      total,
				PaymentMethod:   paymentMethod,
				Status:          models.OrderStatusPending,
				ShippingAddress: req.ShippingAddress,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})
		if txErr != nil {
			if txErr.Error() == "invalid coupon code" {
				c.JSON(http.StatusNotFound, gin.H{"error": txErr.Error()})
				return
			}
			if txErr.Error() == "coupon is no longer valid" {
				c.JSON(http.StatusBadRequest, gin.H{"error": txErr.Error()})
				return
			}
			utils.StoreError(c, "Failed to create order", txErr)
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrders lists every order, newest first. Admin only.
// GET /products/orders/all
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			utils.StoreError(c, "Failed to fetch orders", err)
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No orders found"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus moves an order through the status enum. Admin only.
// PUT /products/orders/:id
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			utils.StoreError(c, "Failed to fetch order", err)
			return
		}

		order.Status = newStatus
		if err := db.Save(&order).Error; err != nil {
			utils.StoreError(c, "Failed to update order status", err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
