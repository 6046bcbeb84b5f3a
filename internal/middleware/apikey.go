package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/amara-health/his-api/pkg/config"
	appErrors "github.com/amara-health/his-api/pkg/errors"
	"github.com/amara-health/his-api/pkg/response"
)

// APIKey protects mutating routes with the shared-secret credential. The key
// arrives in the configured header and must match exactly; read routes are
// never wrapped with this middleware. Rejection happens before any
// validation or persistence runs.
func APIKey(cfg config.AuthConfig) gin.HandlerFunc {
	header := cfg.Header
	if header == "" {
		header = "X-API-Key"
	}

	return func(c *gin.Context) {
		supplied := c.GetHeader(header)
		if supplied == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing API key"))
			c.Abort()
			return
		}

		if !keyMatches(cfg, supplied) {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid API key"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// keyMatches compares the supplied key against the configured secret. A
// configured bcrypt hash takes precedence over the plain key; the plain
// comparison is constant time.
func keyMatches(cfg config.AuthConfig, supplied string) bool {
	if cfg.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.KeyHash), []byte(supplied)) == nil
	}
	if cfg.Key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cfg.Key), []byte(supplied)) == 1
}
