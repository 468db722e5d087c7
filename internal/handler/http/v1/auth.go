package v1

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	adminIDHeader  = "X-Admin-ID"
	adminIDContext = "admin_id"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// AdminIdentityMiddleware берет идентификатор администратора из заголовка.
// Аутентификация самого администратора выполняется внешним провайдером.
func AdminIdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(adminIDHeader))
		if id == "" {
			log.Warn("Admin identity missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin identity required"})
			return
		}
		c.Set(adminIDContext, id)
		c.Next()
	}
}

func adminID(c *gin.Context) string {
	return c.GetString(adminIDContext)
}
