package filesControllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

const maxFileSize = 5 << 20 // 5MB

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// UploadFile stores a product image in the database.
// POST /files/upload/:id
func UploadFile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		if header.Size > maxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB limit"})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if !allowedTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, JPG, and PNG are allowed."})
			return
		}

		file, err := header.Open()
		if err != nil {
			utils.StoreError(c, "Failed to read uploaded file", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			utils.StoreError(c, "Failed to read uploaded file", err)
			return
		}

		stored := models.StoredFile{
			Name:        header.Filename,
			Data:        data,
			ContentType: contentType,
			ProductID:   uint(productID),
		}
		if err := db.Create(&stored).Error; err != nil {
			utils.StoreError(c, "Failed to save file", err)
			return
		}

		c.JSON(http.StatusCreated, stored)
	}
}

// GetFile serves a stored image with its original content type.
// GET /files/:id
func GetFile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
			return
		}

		var stored models.StoredFile
		if err := db.First(&stored, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
				return
			}
			utils.StoreError(c, "Failed to fetch file", err)
			return
		}

		c.Data(http.StatusOK, stored.ContentType, stored.Data)
	}
}
