package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"resortly/config"
)

// StaffAuthMiddleware guards the administrative surface (price rules,
// resource management, order board, status transitions). Token issuance is
// owned by the external auth collaborator; this middleware only validates
// tokens it is handed.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized staff access"})
			return
		}
		if role, _ := claims["role"].(string); role != "staff" && role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff role required"})
			return
		}

		c.Set("staffID", claims["sub"])
		c.Next()
	}
}
