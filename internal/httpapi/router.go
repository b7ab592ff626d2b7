package httpapi

import (
	"github.com/gin-gonic/gin"

	"gearmart-be/internal/analytics"
	"gearmart-be/internal/cart"
	"gearmart-be/internal/feedback"
	"gearmart-be/internal/logger"
	"gearmart-be/internal/middleware"
	"gearmart-be/internal/notification"
	"gearmart-be/internal/order"
	"gearmart-be/internal/pricing"
	"gearmart-be/internal/product"
	"gearmart-be/internal/user"
	"gearmart-be/internal/wishlist"
)

// Handler bundles the services the HTTP layer dispatches to.
type Handler struct {
	Users         user.Service
	Products      product.Service
	Pricing       *pricing.Policy
	Carts         cart.Service
	Orders        order.Service
	Notifications notification.Service
	Wishlist      wishlist.Service
	Feedback      feedback.Service
	Analytics     analytics.Service
	Receipts      ReceiptRenderer
}

// NewRouter builds the gin engine with all route groups mounted.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}

	users := api.Group("/users", middleware.RequireAuth())
	{
		users.GET("/profile", h.getProfile)
		users.PUT("/profile", h.updateProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/top-selling", h.topSelling)
		products.GET("/:id", h.getProduct)
		products.GET("/:id/discount", h.discountPreview)

		admin := products.Group("", middleware.RequireAuth(), middleware.RequireAdmin())
		admin.POST("", h.createProduct)
		admin.PUT("/:id", h.updateProduct)
		admin.DELETE("/:id", h.deleteProduct)
		admin.PATCH("/:id/stock", h.adjustStock)
	}

	carts := api.Group("/cart", middleware.RequireAuth())
	{
		carts.POST("", h.addToCart)
		carts.GET("", h.listCart)
		carts.GET("/total", h.cartTotal)
		carts.PUT("/:productId", h.updateCartItem)
		carts.DELETE("/:productId", h.removeCartItem)
	}

	orders := api.Group("/orders", middleware.RequireAuth())
	{
		orders.POST("/checkout", h.checkout)
		orders.GET("/mine", h.myOrders)
		orders.GET("/:id", h.getOrder)
		orders.GET("/:id/receipt", h.orderReceipt)
		orders.POST("/:id/payment-success", h.paymentSuccess)

		admin := orders.Group("", middleware.RequireAdmin())
		admin.GET("", h.listOrders)
		admin.PUT("/:id/status", h.updateOrderStatus)
		admin.PUT("/:id/shipping", h.updateShippingStatus)
	}

	wl := api.Group("/wishlist", middleware.RequireAuth())
	{
		wl.POST("", h.addToWishlist)
		wl.GET("", h.listWishlist)
		wl.DELETE("/:productId", h.removeFromWishlist)
	}

	notifications := api.Group("/notifications", middleware.RequireAuth())
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:id/read", h.markNotificationRead)
	}

	fb := api.Group("/feedback")
	{
		fb.POST("", middleware.RequireAuth(), h.submitFeedback)
		fb.GET("", middleware.RequireAuth(), middleware.RequireAdmin(), h.listFeedback)
	}

	adminAPI := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminAPI.GET("/users", h.listUsers)
		adminAPI.PUT("/users/:id/approve", h.approveUser)
	}

	an := api.Group("/analytics", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		an.GET("/abc", h.abcAnalysis)
		an.GET("/fsn", h.fsnAnalysis)
		an.GET("/forecast/sma", h.forecastSMA)
		an.GET("/forecast/ema", h.forecastEMA)
		an.GET("/forecast/regression", h.forecastRegression)
		an.GET("/report", h.salesReport)
	}

	return r
}
