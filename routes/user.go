package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/Hyperht/piano-backend/controllers/address"
	cartControllers "github.com/Hyperht/piano-backend/controllers/cart"
	favoriteControllers "github.com/Hyperht/piano-backend/controllers/favorite"
	orderControllers "github.com/Hyperht/piano-backend/controllers/order"
	reviewControllers "github.com/Hyperht/piano-backend/controllers/review"
	userControllers "github.com/Hyperht/piano-backend/controllers/user"
	"github.com/Hyperht/piano-backend/middleware"
)

// SetupUserRoutes registers the JWT-protected endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		api.GET("/profile", userControllers.GetProfile(db))
		api.PUT("/profile", userControllers.UpdateProfile(db))

		cart := api.Group("/cart")
		{
			cart.GET("", cartControllers.GetUserCart(db))
			cart.POST("/add_item", cartControllers.AddCartItem(db))
			cart.PUT("/coupon", cartControllers.ApplyCoupon(db))
			cart.PUT("/items/:id", cartControllers.UpdateCartItem(db))
			cart.DELETE("/items/:id", cartControllers.DeleteCartItem(db))
			cart.DELETE("", cartControllers.ClearUserCart(db))
		}

		api.POST("/checkout", orderControllers.Checkout(db))

		orders := api.Group("/orders")
		{
			orders.GET("", orderControllers.GetUserOrders(db))
			orders.GET("/:id", orderControllers.GetUserOrderByID(db))
		}

		addresses := api.Group("/addresses")
		{
			addresses.GET("", addressControllers.ListAddresses(db))
			addresses.POST("", addressControllers.CreateAddress(db))
			addresses.PUT("/:id", addressControllers.UpdateAddress(db))
			addresses.DELETE("/:id", addressControllers.DeleteAddress(db))
			addresses.POST("/:id/set_default", addressControllers.SetDefaultAddress(db))
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", favoriteControllers.ListFavorites(db))
			favorites.POST("/add_or_remove", favoriteControllers.ToggleFavorite(db))
			favorites.DELETE("/:id", favoriteControllers.DeleteFavorite(db))
		}

		api.POST("/products/:id/reviews", reviewControllers.CreateReview(db))
		api.PUT("/products/:id/reviews/:review_id", reviewControllers.UpdateReview(db))
		api.DELETE("/products/:id/reviews/:review_id", reviewControllers.DeleteReview(db))
	}
}
