package checkoutControllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
	"github.com/jetech-hub/jetech-api/realtime"
	"gorm.io/gorm"
)

// DefaultRecipient is the shop's WhatsApp number used when
// WHATSAPP_NUMBER is not configured.
const DefaultRecipient = "2348108126642"

func recipientNumber() string {
	if n := os.Getenv("WHATSAPP_NUMBER"); n != "" {
		return n
	}
	return DefaultRecipient
}

// POST /user/checkout
//
// Converts the current cart into a persisted Order + OrderItems pair
// and responds with the WhatsApp deep link the client should open. The
// cart is only cleared when the whole write succeeds.
func CheckoutHandler(db *gorm.DB, repo cartControllers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to checkout", "redirect": "/signin"})
			return
		}
		identity := Identity{
			UserID: userIDVal.(string),
			Email:  c.GetString("email"),
			Name:   c.GetString("name"),
		}

		store := cartControllers.NewStore(repo, identity.UserID)
		if err := store.Load(c.Request.Context()); err != nil {
			log.Println("❌ Failed to load cart for checkout:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		intent := BuildIntent(store.Lines())
		if len(intent.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order, err := Checkout(db, identity, intent)
		if err != nil {
			if errors.Is(err, ErrNotSignedIn) || errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to checkout", "redirect": "/signin"})
				return
			}
			log.Println("❌ Checkout failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed, please try again"})
			return
		}

		realtime.Broadcast("order.created", order)

		message := RenderMessage(intent)
		c.JSON(http.StatusOK, gin.H{
			"order_id":     order.ID,
			"order_ref":    order.OrderRef,
			"total_price":  order.TotalPrice,
			"message":      message,
			"whatsapp_url": WhatsAppLink(recipientNumber(), message),
		})
	}
}
