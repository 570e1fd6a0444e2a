// routes/routes.go
package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/configs"
	"marketplace/controllers"
	"marketplace/middlewares"
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/services"
	"marketplace/utils"
	"marketplace/ws"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Config   *configs.Config
	Logger   *slog.Logger
	Stores   services.Stores
	Sessions *session.Manager
	Hub      *ws.OrderHub // optional; nil disables order events
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	utils.RegisterValidators()

	r.Use(
		middlewares.RequestID(),
		middlewares.Logger(d.Logger),
		middlewares.ErrorHandler(d.Config.Debug, d.Logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			resp.Fail(c, fmt.Errorf("panic: %v", recovered))
		}),
		middlewares.CORSMiddleware(d.Config.FrontendOrigin),
		middlewares.Timeout(d.Config.RequestTimeout),
		middlewares.SessionLoader(d.Sessions),
	)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	var notifier services.OrderNotifier = services.NopNotifier{}
	if d.Hub != nil {
		notifier = d.Hub
	}

	// Controllers
	userCtrl := controllers.NewUserController(services.NewUserService(d.Stores.Users), d.Sessions)
	buyerCtrl := controllers.NewBuyerController(services.NewBuyerService(d.Stores), d.Sessions)
	vendorCtrl := controllers.NewVendorController(services.NewVendorService(d.Stores), d.Sessions)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(d.Stores))
	cartCtrl := controllers.NewCartController(services.NewCartService(d.Stores))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(d.Stores, notifier))

	api := r.Group("/api")

	auth := middlewares.AuthMiddleware()
	buyer := middlewares.AuthMiddleware(middlewares.RoleBuyer)
	vendor := middlewares.AuthMiddleware(middlewares.RoleVendor)

	// Users
	users := api.Group("/users")
	{
		users.POST("/signup", userCtrl.Signup)
		users.POST("/login", userCtrl.Login)
		users.POST("/logout", auth, userCtrl.Logout)
		users.GET("/me", auth, userCtrl.Me)
	}

	// Buyers
	buyers := api.Group("/buyers")
	{
		buyers.POST("", auth, buyerCtrl.Create)
		buyers.GET("", buyer, buyerCtrl.Get)
		buyers.PATCH("", buyer, buyerCtrl.Update)
		buyers.GET("/savedVendors", buyer, buyerCtrl.SavedVendors)
		buyers.PATCH("/savedVendor", buyer, buyerCtrl.ToggleSavedVendor)
	}

	// Vendors
	vendors := api.Group("/vendors")
	{
		vendors.POST("", auth, vendorCtrl.Create)
		vendors.GET("", vendor, vendorCtrl.Get)
		vendors.PATCH("", vendor, vendorCtrl.Update)
		vendors.PATCH("/cuisine", vendor, vendorCtrl.ToggleCuisine)
		vendors.GET("/all", auth, vendorCtrl.List)
		vendors.GET("/:vendorId", auth, vendorCtrl.Detail)
	}

	// Menus (reads are public)
	menus := api.Group("/menus")
	{
		menus.GET("/:vendorId", menuCtrl.ListByVendor)
		menus.GET("/item/:menuItemId", menuCtrl.Get)
		menus.POST("/item", vendor, menuCtrl.Create)
		menus.PUT("/item/:menuItemId", vendor, menuCtrl.Update)
		menus.PATCH("/item/:menuItemId/availability", vendor, menuCtrl.ToggleAvailability)
		menus.DELETE("/item/:menuItemId", vendor, menuCtrl.Delete)
	}

	// Carts (buyer)
	carts := api.Group("/carts", buyer)
	{
		carts.GET("", cartCtrl.List)
		carts.DELETE("", cartCtrl.EmptyAll)
		carts.POST("/cart", cartCtrl.Create)
		carts.GET("/cart/:cartId", cartCtrl.Get)
		carts.PUT("/cart/:cartId", cartCtrl.ReplaceItems)
		carts.PATCH("/cart/:cartId/item", cartCtrl.UpsertItem)
		carts.PATCH("/cart/:cartId/saved", cartCtrl.ToggleSaved)
		carts.DELETE("/cart/:cartId", cartCtrl.Empty)
	}

	// Orders
	buyerOrders := api.Group("/orders/buyer", buyer)
	{
		buyerOrders.GET("", orderCtrl.ListForBuyer)
		buyerOrders.POST("", orderCtrl.Place)
		buyerOrders.GET("/:orderId", orderCtrl.GetForBuyer)
		buyerOrders.PATCH("/:orderId/cancel", orderCtrl.Cancel)
	}
	vendorOrders := api.Group("/orders/vendor", vendor)
	{
		vendorOrders.GET("", orderCtrl.ListForVendor)
		vendorOrders.GET("/pending", orderCtrl.ListPending)
		vendorOrders.GET("/:orderId", orderCtrl.GetForVendor)
		vendorOrders.PATCH("/:orderId/process", orderCtrl.Process)
		vendorOrders.PATCH("/:orderId/status", orderCtrl.UpdateStatus)
	}

	// Order events
	if d.Hub != nil {
		buyerOrders.GET("/ws", d.Hub.HandleBuyer)
		vendorOrders.GET("/ws", d.Hub.HandleVendor)
	}
}
