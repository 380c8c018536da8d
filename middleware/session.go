package middleware

import (
	"net/http"

	"github.com/expensex/expensex-api/models"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// SessionSource exposes the state route gates depend on.
type SessionSource interface {
	IsLoading() bool
	CurrentIdentity() (models.Identity, bool)
}

// RequireSession answers 503 while the session is still being restored and
// 401 when nobody is signed in.
func RequireSession(src SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if src.IsLoading() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session is loading"})
			return
		}

		id, ok := src.CurrentIdentity()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok || !id.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
