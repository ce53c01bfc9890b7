package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSession guards back-office routes with a bearer token issued
// by sign-in.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		p, err := h.auth.Profile(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		c.Set("profile", p)
		c.Next()
	}
}
