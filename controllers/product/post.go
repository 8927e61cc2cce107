package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveUpload stores a multipart file under uploads/<subdir> and returns the
// public URL path.
func saveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(uploadDir(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

func parseIDList(raw string) ([]uint, error) {
	var ids []uint
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id64, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id64))
	}
	return ids, nil
}

// CreateProduct creates a product from a multipart form: text fields, tag
// associations (comma-separated id lists) and an image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		originalPriceStr := c.PostForm("original_price")
		if name == "" || originalPriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and original_price are required"})
			return
		}

		originalPrice, err := strconv.ParseFloat(originalPriceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
			return
		}

		product := models.Product{
			Name:             name,
			ShortDescription: c.PostForm("short_description"),
			Description:      c.PostForm("description"),
			Dimensions:       c.PostForm("dimensions"),
			OriginalPrice:    originalPrice,
			IsActive:         true,
		}

		if v := c.PostForm("sale_price"); v != "" {
			sp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
			product.SalePrice = sp
		}
		product.IsOnSale = c.PostForm("is_on_sale") == "true"

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

		for form, dest := range map[string]interface{}{
			"color_ids": &product.Colors,
			"room_ids":  &product.Rooms,
			"style_ids": &product.Styles,
		} {
			raw := c.PostForm(form)
			if raw == "" {
				continue
			}
			ids, err := parseIDList(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + form + " format"})
				return
			}
			if len(ids) == 0 {
				continue
			}
			if err := db.Where("id IN ?", ids).Find(dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + form})
				return
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := saveUpload(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
