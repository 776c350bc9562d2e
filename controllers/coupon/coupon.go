package couponControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type CreateCouponInput struct {
	Discount *float64 `json:"discount" binding:"required"`
	MaxUsage int      `json:"maxUsage" binding:"required,min=1"`
	Valid    bool     `json:"valid"`
}

type ApplyCouponInput struct {
	Code string `json:"code" binding:"required"`
}

// CreateCoupon mints a coupon with a generated code. Admin only.
// POST /products/coupon
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if *input.Discount <= 0 || *input.Discount > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount must be between 0 and 100"})
			return
		}

		coupon := models.Coupon{
			Code:     uuid.NewString(),
			Discount: *input.Discount,
			MaxUsage: input.MaxUsage,
			Valid:    input.Valid,
		}
		if err := db.Create(&coupon).Error; err != nil {
			utils.StoreError(c, "Failed to create coupon", err)
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// ApplyCoupon validates a code and burns one usage, returning the discount the
// client should apply.
// POST /products/coupon/apply
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon models.Coupon
		if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
				return
			}
			utils.StoreError(c, "Failed to fetch coupon", err)
			return
		}
		if !coupon.Valid || coupon.UsedCount >= coupon.MaxUsage {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon is no longer valid"})
			return
		}

		coupon.UsedCount++
		if err := db.Save(&coupon).Error; err != nil {
			utils.StoreError(c, "Failed to update coupon", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": coupon.Code, "discount": coupon.Discount})
	}
}
