package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	GadgetID uint `json:"gadget_id" binding:"required"`
}

// SetQuantityInput binds quantity through a pointer so a literal 0 is
// distinguishable from a missing field. Values below 1 are accepted and
// ignored by the store rather than rejected here.
type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(store *Store) gin.H {
	return gin.H{
		"items":       store.Lines(),
		"item_count":  store.ItemCount(),
		"total_price": store.TotalPrice(),
	}
}

func requestStore(c *gin.Context, repo Repository) (*Store, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	store := NewStore(repo, userIDVal.(string))
	if err := store.Load(c.Request.Context()); err != nil {
		log.Println("❌ Failed to load cart:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return nil, false
	}
	return store, true
}

// GET /user/cart
func GetUserCart(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := requestStore(c, repo)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// POST /user/cart
func AddCartItem(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := requestStore(c, repo)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := store.Add(c.Request.Context(), input.GadgetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Gadget does not exist"})
				return
			}
			log.Println("❌ Failed to add cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// PUT /user/cart/:gadget_id
func SetCartItemQuantity(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := requestStore(c, repo)
		if !ok {
			return
		}

		gadgetID, err := strconv.ParseUint(c.Param("gadget_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gadget ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := store.SetQuantity(c.Request.Context(), uint(gadgetID), *input.Quantity); err != nil {
			if errors.Is(err, ErrLineNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			log.Println("❌ Failed to update cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /user/cart/:gadget_id
func DeleteCartItem(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := requestStore(c, repo)
		if !ok {
			return
		}

		gadgetID, err := strconv.ParseUint(c.Param("gadget_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gadget ID"})
			return
		}

		if err := store.Remove(c.Request.Context(), uint(gadgetID)); err != nil {
			if errors.Is(err, ErrLineNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			log.Println("❌ Failed to delete cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := requestStore(c, repo)
		if !ok {
			return
		}

		if err := store.Clear(c.Request.Context()); err != nil {
			log.Println("❌ Failed to clear cart:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		store := NewStore(repo, userID)
		if err := store.Load(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(store))
	}
}
