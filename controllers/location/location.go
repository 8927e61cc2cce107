// Package locationControllers serves the shipping location reference data:
// governorates and their areas with per-area shipping costs.
package locationControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/cache"
	"github.com/Hyperht/piano-backend/models"
)

const locationCacheTTL = 10 * time.Minute

// GET /api/governorates — governorates with their areas, for shipping forms.
func GetGovernorates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var governorates []models.Governorate
		if cache.GetJSON(c.Request.Context(), "location:governorates", &governorates) {
			c.JSON(http.StatusOK, governorates)
			return
		}
		if err := db.Preload("Areas").Order("name").Find(&governorates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch governorates"})
			return
		}
		cache.SetJSON(c.Request.Context(), "location:governorates", governorates, locationCacheTTL)
		c.JSON(http.StatusOK, governorates)
	}
}

// GET /api/areas?governorate_id=
func GetAreas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Governorate").Order("name")
		if governorateID := c.Query("governorate_id"); governorateID != "" {
			query = query.Where("governorate_id = ?", governorateID)
		}

		var areas []models.Area
		if err := query.Find(&areas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch areas"})
			return
		}
		c.JSON(http.StatusOK, areas)
	}
}
