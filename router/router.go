package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dapizza/storefront/controllers"
	"github.com/dapizza/storefront/middlewares"
	"github.com/dapizza/storefront/models"
	"github.com/dapizza/storefront/store"
)

// SetupRouter wires the two state containers into the HTTP surface.
// Everything a customer touches is public; catalog mutation lives
// behind the /admin group.
func SetupRouter(catalog *store.CatalogStore, cart *store.CartAggregator, categories []models.Category) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(catalog)
	categoryCtrl := controllers.NewCategoryController(categories)
	cartCtrl := controllers.NewCartController(catalog, cart)
	authCtrl := controllers.NewAuthController()

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddCartItem)
	r.PATCH("/cart/items/:pizza_id", cartCtrl.UpdateCartItem)
	r.DELETE("/cart/items/:pizza_id", cartCtrl.RemoveCartItem)
	r.POST("/cart/toggle", cartCtrl.ToggleCart)
	r.POST("/cart/close", cartCtrl.CloseCart)
	r.POST("/checkout", cartCtrl.Checkout)

	// Live catalog updates for open menu screens
	r.GET("/events/ws", controllers.MenuEventsHandler)

	// Throttled hard: a single shared password invites guessing
	login := r.Group("/")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/admin/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())

	admin.POST("/logout", authCtrl.Logout)

	admin.GET("/menus", menuCtrl.GetAllMenus)
	admin.POST("/menus", menuCtrl.CreateMenu)
	admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	admin.PATCH("/menus/:menu_id/availability", menuCtrl.ToggleMenuAvailability)

	return r
}
