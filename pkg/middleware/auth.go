package middleware

import (
	"net/http"
	"strings"

	"vidtube/pkg/jwt"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware.
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// AuthMiddleware validates the bearer token and attaches the caller identity to the
// gin context. Requests without a valid token never reach the handler.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized: authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized: invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized: invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
