package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/config"
	"github.com/projectflow-simple/services"
)

// SessionCookieName returns the configured name of the session cookie.
func SessionCookieName() string {
	return config.GetEnv("SESSION_COOKIE", "pf_session")
}

// SessionToken extracts the session JWT from the request: the session
// cookie first, then an Authorization bearer header. Empty means no
// session.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName()); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid session and exposes
// the resolved identity as userId / userDetails / email on the gin
// context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := services.ValidateSessionToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userDetails", claims.UserDetails)
		c.Set("email", claims.Email)
		c.Next()
	}
}
