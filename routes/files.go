package routes

import (
	"github.com/gin-gonic/gin"
	filesControllers "github.com/omarghandour/clockyexpress/controllers/files"
	"gorm.io/gorm"
)

// SetupFileRoutes registers the "/files/*" image endpoints.
func SetupFileRoutes(r *gin.Engine, db *gorm.DB) {
	files := r.Group("/files")
	{
		files.POST("/upload/:id", filesControllers.UploadFile(db))
		files.GET("/:id", filesControllers.GetFile(db))
	}
}
