package reviewControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// GET /api/products/:id/reviews
func ListProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("User").
			Where("product_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /api/products/:id/reviews — one review per user per product.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var existing models.Review
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this product"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: product.ID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			// Unique index on (user, product) can still fire under a race.
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this product"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// ownReview fetches a review scoped to this product and user. Reviews that
// exist but belong to someone else come back as not found.
func ownReview(db *gorm.DB, c *gin.Context, userID string) (*models.Review, bool) {
	var review models.Review
	if err := db.Where("id = ? AND product_id = ? AND user_id = ?",
		c.Param("review_id"), c.Param("id"), userID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}
	return &review, true
}

// PUT /api/products/:id/reviews/:review_id
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, ok := ownReview(db, c, userID)
		if !ok {
			return
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := db.Save(review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /api/products/:id/reviews/:review_id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		review, ok := ownReview(db, c, userID)
		if !ok {
			return
		}

		if err := db.Delete(review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
