package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharpfade/barbershop-api/internal/models"
)

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.UserTypeAdmin)
}

func RequireBarber() gin.HandlerFunc {
	return RequireRole(models.UserTypeBarber)
}
