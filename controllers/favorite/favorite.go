package favoriteControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type ToggleFavoriteInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// GET /api/favorites
func ListFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var favorites []models.Favorite
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}

// POST /api/favorites/add_or_remove
// Existing pair is removed, absent pair is created. The unique index on
// (user_id, product_id) stops a concurrent double-insert.
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ToggleFavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var favorite models.Favorite
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).
			First(&favorite).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			favorite = models.Favorite{UserID: userID, ProductID: product.ID}
			if err := db.Create(&favorite).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{
				"message":      "Product added to favorites",
				"is_favorited": true,
				"favorite":     favorite,
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		default:
			if err := db.Delete(&favorite).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message":      "Product removed from favorites",
				"is_favorited": false,
			})
		}
	}
}

// DELETE /api/favorites/:id
func DeleteFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			Delete(&models.Favorite{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
