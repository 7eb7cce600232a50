package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker reports whether an email belongs to an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyAdmin lets through only admins. Must run after VerifyJWT.
func VerifyAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := DecodedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			zap.L().Error("Admin lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify admin"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
