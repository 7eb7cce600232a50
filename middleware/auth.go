package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// DecodedKey holds the verified *utils.AccessClaims.
	DecodedKey = "decoded"
	// EmailKey holds the email carried by the verified token.
	EmailKey = "email"
)

// VerifyJWT requires a Bearer token signed by tokens. A missing header is
// 401; a token that fails verification is 403.
func VerifyJWT(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(DecodedKey, claims)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireQueryEmail rejects requests whose query parameter differs from the
// verified token email. Must run after VerifyJWT.
func RequireQueryEmail(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(param) != DecodedEmail(c) || DecodedEmail(c) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// DecodedEmail returns the verified token email, or "" when the request was
// not verified.
func DecodedEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}
