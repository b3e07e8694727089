package middleware

import (
	"context"
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/gin-gonic/gin"
)

// AdminChecker decides whether an account holds the admin role
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin is a middleware that checks the session owner is an admin.
// It must run after SessionAuth. The role is looked up on every request so a demotion takes effect at once.
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "unauthorized access"))
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), claims.Email)
		if err != nil {
			log.WithError(err).WithField("email", claims.Email).Error("Admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "forbidden access"))
			return
		}

		c.Next()
	}
}
