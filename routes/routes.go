package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, user-scoped, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db)
}
