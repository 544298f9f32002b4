package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// AuthMiddleware creates authentication middleware. Validation is purely
// cryptographic: there is no server-side session to look up.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenParts[1])
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
			case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	})
}
