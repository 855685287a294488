package checkoutControllers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
)

func TestCheckoutEmptyCart(t *testing.T) {
	identity := Identity{UserID: "user-1", Email: "ada@example.com"}

	// An empty cart is rejected before any database work happens, so a
	// nil handle proves nothing was persisted.
	order, err := Checkout(nil, identity, BuildIntent(nil))

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
}

func TestCheckoutNotSignedIn(t *testing.T) {
	intent := BuildIntent([]cartControllers.Line{
		{GadgetID: 10, GadgetName: "Phone X", UnitPrice: 100000, Quantity: 1},
	})

	order, err := Checkout(nil, Identity{}, intent)

	require.ErrorIs(t, err, ErrNotSignedIn)
	assert.Nil(t, order)
}

func TestGenerateOrderRef(t *testing.T) {
	ref := generateOrderRef()

	assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f-]{36}$`), ref)
	assert.NotEqual(t, ref, generateOrderRef())
}
