package utils

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// IsProduction reports whether the process runs with APP_ENV=production.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// StoreError converts a persistence failure into a 500. The underlying error
// is echoed only outside production.
func StoreError(c *gin.Context, msg string, err error) {
	if !IsProduction() && err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
