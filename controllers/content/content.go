// Package contentControllers serves the storefront's content blocks: hero
// slides, promo banners and the promo grid.
package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

// GET /api/hero-slides
func GetHeroSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.HeroSlide
		if err := db.Where("is_active = ?", true).
			Order(`"order"`).
			Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// GET /api/promo-banner — the single active banner with the latest end date.
func GetActivePromoBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.PromoBanner
		err := db.Where("is_active = ?", true).
			Order("end_date DESC").
			First(&banner).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "No active promo banner found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo banner"})
			return
		}
		c.JSON(http.StatusOK, banner)
	}
}

// GET /api/promo-grid
func GetPromoGrid(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entries []models.PromoGridCategory
		if err := db.Where("is_active = ?", true).
			Order(`"order"`).
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo grid"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /admin/hero-slides
func CreateHeroSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.HeroSlide
		if err := c.ShouldBindJSON(&slide); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if slide.Image == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}
		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero slide"})
			return
		}
		c.JSON(http.StatusCreated, slide)
	}
}

// DELETE /admin/hero-slides/:id
func DeleteHeroSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.HeroSlide{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hero slide"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hero slide deleted"})
	}
}

// POST /admin/promo-banners
func CreatePromoBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.PromoBanner
		if err := c.ShouldBindJSON(&banner); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if banner.Image == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo banner"})
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}

// DELETE /admin/promo-banners/:id
func DeletePromoBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.PromoBanner{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo banner"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo banner not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promo banner deleted"})
	}
}
