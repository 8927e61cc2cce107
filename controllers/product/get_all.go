package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

var orderableFields = map[string]string{
	"original_price": "original_price",
	"rating":         "rating",
	"created_at":     "created_at",
}

// GetProducts lists active products with search, category/subcategory, price
// range and ordering filters.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		subcategoryID := c.Query("subcategory_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		column, ok := orderableFields[sortBy]
		if !ok {
			column = "created_at"
		}

		query := db.Model(&models.Product{}).
			Preload("Category").Preload("Subcategory").Preload("Colors").
			Where("is_active = ?", true)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"name ILIKE ? OR short_description ILIKE ? OR description ILIKE ?",
				likePattern, likePattern, likePattern,
			)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("original_price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("original_price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}
		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}
		if subcategoryID != "" {
			if sid, err := strconv.ParseUint(subcategoryID, 10, 64); err == nil {
				query = query.Where("subcategory_id = ?", uint(sid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory_id"})
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", column, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductSuggestions returns name prefix suggestions for a search box.
func GetProductSuggestions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		limit := 10
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
				limit = n
			}
		}
		if q == "" {
			c.JSON(http.StatusOK, gin.H{"suggestions": []string{}})
			return
		}

		var names []string
		if err := db.Model(&models.Product{}).
			Where("is_active = ? AND name ILIKE ?", true, q+"%").
			Order("name").Limit(limit).
			Pluck("name", &names).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": names})
	}
}
