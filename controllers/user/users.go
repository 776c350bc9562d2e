package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const cookieMaxAge = 7 * 24 * 60 * 60 // seconds

func authResponse(user models.User, token string) gin.H {
	return gin.H{
		"_id":     user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"token":   token,
	}
}

// Register creates an account and returns a fresh session token.
// POST /users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			utils.StoreError(c, "Failed to check email", err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.StoreError(c, "Failed to hash password", err)
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			utils.StoreError(c, "Failed to create user", err)
			return
		}

		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			utils.StoreError(c, "Failed to issue token", err)
			return
		}
		c.JSON(http.StatusCreated, authResponse(user, token))
	}
}

// Login checks credentials, sets the session cookie and returns the token in
// the body as well.
// POST /users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			utils.StoreError(c, "Failed to issue token", err)
			return
		}
		c.SetCookie("token", token, cookieMaxAge, "/", "", utils.IsProduction(), true)

		c.JSON(http.StatusOK, authResponse(user, token))
	}
}
