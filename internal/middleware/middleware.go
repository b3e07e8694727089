package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the middleware logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// SessionParser verifies a session token and returns its claims
type SessionParser interface {
	Parse(token string) (auth.Claims, error)
}

// SessionAuth requires a valid session cookie. The decoded claims are stored on the
// request context and can be read with auth.ClaimsFrom.
func SessionAuth(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			abortUnauthorized(c, "missing session cookie")
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, reason string) {
	log.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"reason": reason,
	}).Debug("Rejected unauthenticated request")
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "unauthorized access"))
}
