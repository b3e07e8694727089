package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UserController handles the account directory
type UserController interface {
	UpsertUser(c *gin.Context)
	GetUser(c *gin.Context)
	PatchUser(c *gin.Context)
	ListUsers(c *gin.Context)
	CheckAdmin(c *gin.Context)
	SetUserRole(c *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

// UpsertUser godoc
// @Summary Record a sign in
// @Description Creates the account on first sign in, otherwise refreshes name, photo and last login
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Router /user [put]
func (c *userController) UpsertUser(ctx *gin.Context) {
	var profile models.UserProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.UpsertUser(ctx.Request.Context(), profile)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUser godoc
// @Summary Get an account
// @Description Responds with null when there is no account for the email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.User
// @Router /user/{email} [get]
func (c *userController) GetUser(ctx *gin.Context) {
	user, err := c.service.GetUser(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// PatchUser godoc
// @Summary Update your own account
// @Description The role is not writable here
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "Email"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /user/{email} [patch]
func (c *userController) PatchUser(ctx *gin.Context) {
	email := ctx.Param("email")
	claims, ok := auth.ClaimsFrom(ctx.Request.Context())
	if !ok || claims.Email != email {
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "forbidden access"))
		return
	}

	var patch models.UserPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.PatchUser(ctx.Request.Context(), email, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListUsers godoc
// @Summary Page through accounts
// @Tags users
// @Produce json
// @Param search query string false "Name or email contains"
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.User]
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /users [get]
func (c *userController) ListUsers(ctx *gin.Context) {
	page, err := c.service.ListUsers(ctx.Request.Context(), pageQuery(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// CheckAdmin godoc
// @Summary Check the admin role
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]bool
// @Router /users/admin/{email} [get]
func (c *userController) CheckAdmin(ctx *gin.Context) {
	admin, err := c.service.IsAdmin(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"admin": admin})
}

// SetUserRole godoc
// @Summary Change an account as admin
// @Description Overwrites the given fields, the role included
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "Email"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /users/admin/{email} [patch]
func (c *userController) SetUserRole(ctx *gin.Context) {
	var patch models.UserPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.SetUserRole(ctx.Request.Context(), ctx.Param("email"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
