package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up the public,
// auth, user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public storefront routes
	SetupPublicRoutes(r, db)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
