package checkoutControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotSignedIn = errors.New("not signed in")
)

// Identity is the externally managed current-user view this flow
// consumes. It is read, never authenticated here.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// generateOrderRef returns a unique order reference.
// Example: 20260831130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout persists one Order plus one OrderItem per cart line and
// clears the cart, all in a single transaction. A failure anywhere
// rolls the whole checkout back and leaves the cart intact.
func Checkout(db *gorm.DB, identity Identity, intent Intent) (*models.Order, error) {
	if identity.UserID == "" {
		return nil, ErrNotSignedIn
	}
	if len(intent.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var profile models.User
	if err := db.First(&profile, "id = ?", identity.UserID).Error; err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(intent.Lines))
	for _, line := range intent.Lines {
		orderItems = append(orderItems, models.OrderItem{
			GadgetID:   line.GadgetID,
			GadgetName: line.GadgetName,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		})
	}

	order := models.Order{
		OrderRef: generateOrderRef(),
		UserID:   identity.UserID,
		// First line only. See models.Order.GadgetID.
		GadgetID:      intent.Lines[0].GadgetID,
		CustomerName:  profile.DisplayName(identity.Name),
		CustomerPhone: profile.Phone,
		Items:         orderItems,
		TotalPrice:    intent.TotalPrice,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return NewTxCartCleaner(tx).Clear(identity.UserID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TxCartCleaner clears a user's cart lines inside an existing
// transaction, mirroring cartControllers.GormRepository.DeleteAll.
type TxCartCleaner struct {
	tx *gorm.DB
}

func NewTxCartCleaner(tx *gorm.DB) *TxCartCleaner {
	return &TxCartCleaner{tx: tx}
}

func (c *TxCartCleaner) Clear(userID string) error {
	var cart models.Cart
	if err := c.tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return c.tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
