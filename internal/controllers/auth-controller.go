package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/gin-gonic/gin"
)

// SessionRequest is the identity the frontend obtained from its sign in provider
type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type AuthController struct {
	sessions *auth.SessionManager
	cookies  auth.CookiePolicy
}

func NewAuthController(sessions *auth.SessionManager, cookies auth.CookiePolicy) *AuthController {
	return &AuthController{
		sessions: sessions,
		cookies:  cookies,
	}
}

// IssueSession godoc
// @Summary Start a session
// @Description Signs the identity into a token and sets it as the HttpOnly session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body controllers.SessionRequest true "Identity"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} models.APIError
// @Router /jwt [post]
func (ac *AuthController) IssueSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	token, err := ac.sessions.Issue(req.Email, req.Name)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "token_generation_failed"))
		return
	}

	ac.cookies.SetSession(c.Writer, token, ac.sessions.TTL())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout godoc
// @Summary End the session
// @Description Expires the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.cookies.ClearSession(c.Writer)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
