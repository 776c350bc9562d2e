package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name         string   `json:"name" binding:"required"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Price        *float64 `json:"price" binding:"required"`
	Before       float64  `json:"before"`
	Description  string   `json:"description"`
	CountInStock int      `json:"countInStock"`
	Gender       string   `json:"gender"`
	CaseColor    string   `json:"caseColor"`
	DialColor    string   `json:"dialColor"`
	CaseMaterial string   `json:"caseMaterial"`
	MovementType string   `json:"movmentType"`
	Class        string   `json:"class"`
	Img          string   `json:"img"`
}

// CreateProduct adds a catalog entry. Admin only.
// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if input.CountInStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "countInStock must not be negative"})
			return
		}
		if input.Gender != "" && !models.ValidGender(input.Gender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gender, expected men, women or unisex"})
			return
		}
		if input.MovementType != "" && !models.ValidMovementType(input.MovementType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movement type, expected automatic or quartz"})
			return
		}

		product := models.Product{
			Name:         input.Name,
			Brand:        input.Brand,
			Category:     input.Category,
			Price:        *input.Price,
			Before:       input.Before,
			Description:  input.Description,
			CountInStock: input.CountInStock,
			Gender:       models.Gender(input.Gender),
			CaseColor:    input.CaseColor,
			DialColor:    input.DialColor,
			CaseMaterial: input.CaseMaterial,
			MovementType: models.MovementType(input.MovementType),
			Class:        input.Class,
			Img:          input.Img,
		}

		if err := db.Create(&product).Error; err != nil {
			utils.StoreError(c, "Failed to create product", err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
