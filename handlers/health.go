package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is set at build time.
var Version = "1.0.0"

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}
