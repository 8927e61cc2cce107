package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

// ProductDetailResponse is the full product page payload.
type ProductDetailResponse struct {
	models.Product
	IsFavorited bool `json:"is_favorited"`
}

// GetProductByID returns the full product detail: category, subcategory,
// colors, gallery, rooms, styles, reviews and the caller's favorite flag.
// If the full load fails it degrades to a reduced-field response instead of
// a hard error, so the product page can still render.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		loadErr := db.Where("is_active = ?", true).
			Preload("Category").
			Preload("Subcategory").
			Preload("Colors").
			Preload("GalleryImages.Color").
			Preload("Rooms").
			Preload("Styles").
			Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at DESC")
			}).
			Preload("Reviews.User").
			First(&product, id).Error
		if loadErr == nil {
			resp := ProductDetailResponse{Product: product}
			if userID, exists := c.Get("user_id"); exists {
				var count int64
				db.Model(&models.Favorite{}).
					Where("user_id = ? AND product_id = ?", userID, product.ID).
					Count(&count)
				resp.IsFavorited = count > 0
			}
			c.JSON(http.StatusOK, resp)
			return
		}
		if loadErr == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Reduced-field fallback: essential fields plus colors only.
		var fallback models.Product
		if err := db.Preload("Colors").First(&fallback, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		colors := make([]gin.H, 0, len(fallback.Colors))
		for _, col := range fallback.Colors {
			colors = append(colors, gin.H{"id": col.ID, "name": col.Name, "hex_code": col.HexCode})
		}
		c.JSON(http.StatusOK, gin.H{
			"id":                fallback.ID,
			"name":              fallback.Name,
			"short_description": fallback.ShortDescription,
			"description":       fallback.Description,
			"original_price":    fallback.OriginalPrice,
			"sale_price":        fallback.SalePrice,
			"is_on_sale":        fallback.IsOnSale,
			"image":             fallback.Image,
			"rating":            fallback.Rating,
			"colors":            colors,
			"gallery_images":    []gin.H{},
			"reviews":           []gin.H{},
			"is_favorited":      false,
		})
	}
}
