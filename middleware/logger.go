package middleware

import (
	"time"

	"github.com/expensex/expensex-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLogger tags every request with an id and logs it once it finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		utils.LogAPIRequest(
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
