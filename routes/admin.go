package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contentControllers "github.com/Hyperht/piano-backend/controllers/content"
	couponControllers "github.com/Hyperht/piano-backend/controllers/coupon"
	orderControllers "github.com/Hyperht/piano-backend/controllers/order"
	productControllers "github.com/Hyperht/piano-backend/controllers/product"
	userControllers "github.com/Hyperht/piano-backend/controllers/user"
	"github.com/Hyperht/piano-backend/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		products := admin.Group("/products")
		{
			products.GET("/export-excel", productControllers.ExportProductsToExcel(db))
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		categories := admin.Group("/categories")
		{
			categories.POST("", productControllers.CreateCategory(db))
			categories.PUT("/:id", productControllers.UpdateCategory(db))
			categories.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		coupons := admin.Group("/coupons")
		{
			coupons.GET("", couponControllers.GetAllCoupons(db))
			coupons.POST("", couponControllers.CreateCoupon(db))
			coupons.PUT("/:id", couponControllers.UpdateCoupon(db))
			coupons.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orders.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orders.PUT("/:id/payment-status", orderControllers.UpdatePaymentStatus(db))
		}

		admin.POST("/hero-slides", contentControllers.CreateHeroSlide(db))
		admin.DELETE("/hero-slides/:id", contentControllers.DeleteHeroSlide(db))
		admin.POST("/promo-banners", contentControllers.CreatePromoBanner(db))
		admin.DELETE("/promo-banners/:id", contentControllers.DeletePromoBanner(db))

		admin.GET("/users", userControllers.GetAllUsers(db))
	}

	// Live order feed upgrades to a websocket, the API key travels as a
	// query parameter since browsers cannot set headers on ws connects.
	r.GET("/admin/orders/ws", orderControllers.OrderFeedHandler)
}
