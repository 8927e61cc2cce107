package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

type CreateAddressInput struct {
	AreaID        uint   `json:"area_id" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	PhoneNumber   string `json:"phone_number"`
	IsDefault     bool   `json:"is_default"`
}

type UpdateAddressInput struct {
	AreaID        *uint   `json:"area_id"`
	StreetAddress *string `json:"street_address"`
	PhoneNumber   *string `json:"phone_number"`
	// nil leaves the flag unchanged, explicit false forces it off.
	IsDefault *bool `json:"is_default"`
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// clearOtherDefaults flips is_default off on every other address of the user.
// Must run inside the same transaction that sets the new default.
func clearOtherDefaults(tx *gorm.DB, userID string, keepID uint) error {
	return tx.Model(&models.Address{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, keepID, true).
		Update("is_default", false).Error
}

// GET /api/addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var addresses []models.Address
		if err := db.Preload("Area.Governorate").
			Where("user_id = ?", userID).
			Order("is_default DESC, created_at DESC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/addresses
//
// The row is written with is_default=false first; promoting it to default and
// demoting the others happens in the same transaction, so two concurrent
// creates cannot leave two defaults behind.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CreateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var area models.Area
		if err := db.First(&area, input.AreaID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown area"})
			return
		}

		address := models.Address{
			UserID:        userID,
			AreaID:        input.AreaID,
			StreetAddress: input.StreetAddress,
			PhoneNumber:   input.PhoneNumber,
			IsDefault:     false,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			if input.IsDefault {
				if err := clearOtherDefaults(tx, userID, address.ID); err != nil {
					return err
				}
				address.IsDefault = true
				return tx.Model(&address).Update("is_default", true).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusCreated, address)
	}
}

// PUT /api/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input UpdateAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		if input.AreaID != nil {
			var area models.Area
			if err := db.First(&area, *input.AreaID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown area"})
				return
			}
			address.AreaID = *input.AreaID
		}
		if input.StreetAddress != nil {
			address.StreetAddress = *input.StreetAddress
		}
		if input.PhoneNumber != nil {
			address.PhoneNumber = *input.PhoneNumber
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&address).Error; err != nil {
				return err
			}
			if input.IsDefault != nil {
				if *input.IsDefault {
					if err := clearOtherDefaults(tx, userID, address.ID); err != nil {
						return err
					}
				}
				address.IsDefault = *input.IsDefault
				return tx.Model(&address).Update("is_default", *input.IsDefault).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// POST /api/addresses/:id/set_default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := clearOtherDefaults(tx, userID, address.ID); err != nil {
				return err
			}
			address.IsDefault = true
			return tx.Model(&address).Update("is_default", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// DELETE /api/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
