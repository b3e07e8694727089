package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MembershipController serves the membership tiers
type MembershipController interface {
	ListMemberships(c *gin.Context)
	GetMembership(c *gin.Context)
}

type membershipController struct {
	service services.MembershipService
}

func NewMembershipController(service services.MembershipService) MembershipController {
	return &membershipController{service: service}
}

// ListMemberships godoc
// @Summary List membership tiers
// @Tags memberships
// @Produce json
// @Success 200 {array} models.Membership
// @Router /membership [get]
func (c *membershipController) ListMemberships(ctx *gin.Context) {
	tiers, err := c.service.ListMemberships(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tiers)
}

// GetMembership godoc
// @Summary Get a membership tier
// @Description Responds with null when the tier does not exist
// @Tags memberships
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} models.Membership
// @Router /membership/{id} [get]
func (c *membershipController) GetMembership(ctx *gin.Context) {
	tier, err := c.service.GetMembership(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tier)
}
