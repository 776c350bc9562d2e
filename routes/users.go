package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/omarghandour/clockyexpress/controllers/user"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/users/*" auth endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.Register(db))
		users.POST("/login", userControllers.Login(db))
	}
}
