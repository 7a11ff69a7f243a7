// validates JWT and injects ->
// the caller's *models.Session into Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/global"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/gin-gonic/gin"     // Gin context/request/response types
	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
)

// Auth returns a Gin middleware that validates "Authorization: Bearer <token>"
// and stores the resulting session in the request context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// only HS256 tokens signed with our secret are accepted
		claims := jwt.MapClaims{}
		t, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !t.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		eml, _ := claims["eml"].(string)
		role, _ := claims["role"].(string)

		c.Set(global.CtxSessionKey, &models.Session{UserID: sub, Email: eml, Role: models.Role(role)})
		c.Next()
	}
}

// CurrentSession returns the session stored by Auth, or nil on unauthenticated routes.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(global.CtxSessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}
