package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

// UpdateProduct patches a product from a multipart form; only supplied fields
// change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("short_description"); v != "" {
			product.ShortDescription = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("dimensions"); v != "" {
			product.Dimensions = v
		}
		if v := c.PostForm("original_price"); v != "" {
			op, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			product.OriginalPrice = op
		}
		if v := c.PostForm("sale_price"); v != "" {
			sp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
			product.SalePrice = sp
		}
		if v := c.PostForm("is_on_sale"); v != "" {
			product.IsOnSale = v == "true"
		}
		if v := c.PostForm("is_active"); v != "" {
			product.IsActive = v == "true"
		}
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			id := uint(cid)
			product.CategoryID = &id
		}
		if v := c.PostForm("subcategory_id"); v != "" {
			sid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory_id"})
				return
			}
			id := uint(sid)
			product.SubcategoryID = &id
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := saveUpload(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = url
		}

		if v := c.PostForm("color_ids"); v != "" {
			ids, err := parseIDList(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid color_ids format"})
				return
			}
			var colors []models.Color
			if err := db.Where("id IN ?", ids).Find(&colors).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colors"})
				return
			}
			if err := db.Model(&product).Association("Colors").Replace(colors); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update colors"})
				return
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
