package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
	checkoutControllers "github.com/jetech-hub/jetech-api/controllers/checkout"
	orderControllers "github.com/jetech-hub/jetech-api/controllers/order"
	userControllers "github.com/jetech-hub/jetech-api/controllers/user"
	"github.com/jetech-hub/jetech-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	cartRepo := cartControllers.NewGormRepository(db)

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(cartRepo))                      // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(cartRepo))                     // POST /user/cart
			cartGroup.PUT("/:gadget_id", cartControllers.SetCartItemQuantity(cartRepo))    // PUT /user/cart/:gadget_id
			cartGroup.DELETE("/:gadget_id", cartControllers.DeleteCartItem(cartRepo))      // DELETE /user/cart/:gadget_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(cartRepo))                 // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.CheckoutHandler(db, cartRepo)) // POST /user/checkout

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(db)) // GET /user/orders
	}
}
