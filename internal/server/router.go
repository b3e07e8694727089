package server

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/config"
	"github.com/franciscosanchezn/meal-master-api/internal/controllers"
	"github.com/franciscosanchezn/meal-master-api/internal/middleware"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// RouterParams collects everything the routes are bound to
type RouterParams struct {
	fx.In

	Config   *config.Config
	Sessions *auth.SessionManager
	Users    services.UserService

	Auth        *controllers.AuthController
	Menu        controllers.MenuController
	Upcoming    controllers.UpcomingMealController
	Reviews     controllers.ReviewController
	Likes       controllers.LikeController
	Carts       controllers.CartController
	Payments    controllers.PaymentController
	Accounts    controllers.UserController
	Memberships controllers.MembershipController
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(p.Config.AllowedOrigins))

	setupRoutes(router, p)
	return router
}

// setupRoutes defines the routes for the gin router
func setupRoutes(router *gin.Engine, p RouterParams) {
	session := middleware.SessionAuth(p.Sessions)
	admin := middleware.RequireAdmin(p.Users)

	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler)

	// Session
	router.POST("/jwt", p.Auth.IssueSession)
	router.GET("/logout", p.Auth.Logout)

	// Memberships
	router.GET("/membership", p.Memberships.ListMemberships)
	router.GET("/membership/:id", p.Memberships.GetMembership)

	// Menu
	router.GET("/menu", p.Menu.ListMenuItems)
	router.POST("/menu", session, admin, p.Menu.CreateMenuItem)
	router.GET("/menu/:id", session, p.Menu.GetMenuItem)
	router.PUT("/menu/:id", session, admin, p.Menu.UpdateMenuItem)
	router.DELETE("/menu/:id", session, admin, p.Menu.DeleteMenuItem)
	router.GET("/menu/admin/:email", session, admin, p.Menu.ListMenuItemsByAdmin)
	router.GET("/all-menu", p.Menu.SearchMenu)
	router.GET("/all-meals", p.Menu.PageMenu)

	// Upcoming meals
	router.POST("/upcoming-meal", session, admin, p.Upcoming.CreateUpcomingMeal)
	router.GET("/upcoming-meals", p.Upcoming.ListUpcomingMeals)
	router.GET("/upcoming-meal/:id", p.Upcoming.GetUpcomingMeal)
	router.GET("/upcoming-meals-sort", p.Upcoming.PageUpcomingMeals)
	router.PATCH("/upcoming-meal/:id", session, admin, p.Upcoming.PublishUpcomingMeal)

	// Users
	router.PUT("/user", p.Accounts.UpsertUser)
	router.GET("/user/:email", p.Accounts.GetUser)
	router.PATCH("/user/:email", session, p.Accounts.PatchUser)
	router.GET("/users", session, admin, p.Accounts.ListUsers)
	router.GET("/users/admin/:email", p.Accounts.CheckAdmin)
	router.PATCH("/users/admin/:email", session, admin, p.Accounts.SetUserRole)

	// Reviews
	router.POST("/review/:id", session, p.Reviews.AddReview)
	router.PUT("/review/:id", session, p.Reviews.UpdateReview)
	router.DELETE("/review/:id", session, p.Reviews.DeleteReview)
	router.GET("/all-reviews", session, admin, p.Reviews.ListAllReviews)
	router.GET("/reviews", session, p.Reviews.ListReviewsByUser)

	// Likes
	router.POST("/like", p.Likes.LikeMenuItem)
	router.POST("/upcoming-like", p.Likes.LikeUpcomingMeal)

	// Carts
	router.POST("/carts", session, p.Carts.AddToCart)
	router.GET("/carts", session, p.Carts.ListCartForUser)
	router.GET("/carts-sort", p.Carts.PageCartForUser)
	router.GET("/all-carts", p.Carts.ListAllCarts)
	router.PATCH("/all-carts/:id", session, admin, p.Carts.MarkDelivered)
	router.DELETE("/carts/:id", p.Carts.RemoveCartEntry)

	// Payments
	router.POST("/create-payment-intent", p.Payments.CreateChargeIntent)
	router.POST("/payments", p.Payments.RecordPayment)
	router.GET("/payments", p.Payments.ListPayments)
	router.DELETE("/payments/:id", p.Payments.DeletePayment)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(notFoundHandler)
}

// notFoundHandler answers unknown routes with the standard error body
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "route not found"))
}

// rootHandler answers the liveness banner
// @Summary Banner
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello from meal master Server..")
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "meal-master-api",
	})
}
