package checkoutControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
)

// emptyCartRepo always resolves to an empty cart.
type emptyCartRepo struct{}

func (emptyCartRepo) List(ctx context.Context, userID string) ([]cartControllers.Line, error) {
	return nil, nil
}

func (emptyCartRepo) Create(ctx context.Context, userID string, gadgetID uint) (cartControllers.Line, error) {
	return cartControllers.Line{}, nil
}

func (emptyCartRepo) UpdateQuantity(ctx context.Context, userID string, gadgetID uint, quantity int) (cartControllers.Line, error) {
	return cartControllers.Line{}, nil
}

func (emptyCartRepo) Delete(ctx context.Context, userID string, gadgetID uint) error {
	return nil
}

func (emptyCartRepo) DeleteAll(ctx context.Context, userID string) error {
	return nil
}

func checkoutTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/checkout", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	}, CheckoutHandler(nil, emptyCartRepo{}))
	return r
}

func postCheckout(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user/checkout", nil))
	return w
}

func TestCheckoutHandlerUnauthenticated(t *testing.T) {
	w := postCheckout(t, checkoutTestRouter(""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/signin", body["redirect"])
}

func TestCheckoutHandlerEmptyCart(t *testing.T) {
	// The nil db handle proves the rejection happens before any
	// persistence work.
	w := postCheckout(t, checkoutTestRouter("user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cart is empty", body["error"])
	assert.NotContains(t, body, "redirect")
}
