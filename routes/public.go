package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/Hyperht/piano-backend/controllers/contact"
	contentControllers "github.com/Hyperht/piano-backend/controllers/content"
	locationControllers "github.com/Hyperht/piano-backend/controllers/location"
	productcontroller "github.com/Hyperht/piano-backend/controllers/product"
	reviewControllers "github.com/Hyperht/piano-backend/controllers/review"
	"github.com/Hyperht/piano-backend/middleware"
)

// SetupPublicRoutes registers the unauthenticated catalog and content
// endpoints. Product detail accepts an optional token so the favorite flag
// can be personalized.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/suggestions", productcontroller.GetProductSuggestions(db))
			products.GET("/:id", middleware.OptionalToken, productcontroller.GetProductByID(db))
			products.GET("/:id/reviews", reviewControllers.ListProductReviews(db))
		}

		api.GET("/categories", productcontroller.GetAllCategories(db))
		api.GET("/subcategories", productcontroller.GetSubcategories(db))
		api.GET("/rooms", productcontroller.GetRooms(db))
		api.GET("/styles", productcontroller.GetStyles(db))
		api.GET("/colors", productcontroller.GetColors(db))

		api.GET("/hero-slides", contentControllers.GetHeroSlides(db))
		api.GET("/promo-banner", contentControllers.GetActivePromoBanner(db))
		api.GET("/promo-grid", contentControllers.GetPromoGrid(db))

		api.GET("/governorates", locationControllers.GetGovernorates(db))
		api.GET("/areas", locationControllers.GetAreas(db))

		api.POST("/contact", contactControllers.CreateContactMessage(db))
	}
}
