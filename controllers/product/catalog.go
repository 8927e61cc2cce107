package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/cache"
	"github.com/Hyperht/piano-backend/models"
)

const catalogCacheTTL = 10 * time.Minute

// Rooms, styles and colors change rarely, so the listings are served through
// the cache when one is configured.

// GET /api/rooms
func GetRooms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rooms []models.Room
		if cache.GetJSON(c.Request.Context(), "catalog:rooms", &rooms) {
			c.JSON(http.StatusOK, rooms)
			return
		}
		if err := db.Order("name").Find(&rooms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
			return
		}
		cache.SetJSON(c.Request.Context(), "catalog:rooms", rooms, catalogCacheTTL)
		c.JSON(http.StatusOK, rooms)
	}
}

// GET /api/styles
func GetStyles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var styles []models.Style
		if cache.GetJSON(c.Request.Context(), "catalog:styles", &styles) {
			c.JSON(http.StatusOK, styles)
			return
		}
		if err := db.Order("name").Find(&styles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch styles"})
			return
		}
		cache.SetJSON(c.Request.Context(), "catalog:styles", styles, catalogCacheTTL)
		c.JSON(http.StatusOK, styles)
	}
}

// GET /api/colors
func GetColors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var colors []models.Color
		if cache.GetJSON(c.Request.Context(), "catalog:colors", &colors) {
			c.JSON(http.StatusOK, colors)
			return
		}
		if err := db.Order("name").Find(&colors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colors"})
			return
		}
		cache.SetJSON(c.Request.Context(), "catalog:colors", colors, catalogCacheTTL)
		c.JSON(http.StatusOK, colors)
	}
}
