package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartTestRouter(repo Repository, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	identified := func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	}
	cart := r.Group("/user/cart", identified)
	{
		cart.GET("", GetUserCart(repo))
		cart.POST("", AddCartItem(repo))
		cart.PUT("/:gadget_id", SetCartItemQuantity(repo))
		cart.DELETE("/:gadget_id", DeleteCartItem(repo))
		cart.DELETE("", ClearUserCart(repo))
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type cartPayload struct {
	Items      []Line `json:"items"`
	ItemCount  int    `json:"item_count"`
	TotalPrice int64  `json:"total_price"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartPayload {
	t.Helper()
	var payload cartPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestCartEndpointsFlow(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{10: 100000, 11: 5000})
	r := cartTestRouter(repo, "user-1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 10}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 10}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 11}`)
	require.Equal(t, http.StatusOK, w.Code)

	payload := decodeCart(t, doJSON(t, r, http.MethodGet, "/user/cart", ""))
	assert.Equal(t, 3, payload.ItemCount)
	assert.Equal(t, int64(205000), payload.TotalPrice)
	require.Len(t, payload.Items, 2)

	w = doJSON(t, r, http.MethodPut, "/user/cart/10", `{"quantity": 5}`)
	require.Equal(t, http.StatusOK, w.Code)
	payload = decodeCart(t, w)
	assert.Equal(t, 6, payload.ItemCount)
	assert.Equal(t, int64(505000), payload.TotalPrice)

	w = doJSON(t, r, http.MethodDelete, "/user/cart/11", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload = decodeCart(t, doJSON(t, r, http.MethodGet, "/user/cart", ""))
	assert.Equal(t, 5, payload.ItemCount)
	assert.Equal(t, int64(500000), payload.TotalPrice)

	w = doJSON(t, r, http.MethodDelete, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	payload = decodeCart(t, doJSON(t, r, http.MethodGet, "/user/cart", ""))
	assert.Zero(t, payload.ItemCount)
	assert.Zero(t, payload.TotalPrice)
}

func TestCartEndpointsRequireIdentity(t *testing.T) {
	repo := newFakeRepo(nil)
	r := cartTestRouter(repo, "")

	w := doJSON(t, r, http.MethodGet, "/user/cart", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 10}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddUnknownGadget(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{})
	r := cartTestRouter(repo, "user-1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Gadget does not exist")
}

func TestSetQuantityBelowOneIsAcceptedAndIgnored(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{10: 100000})
	r := cartTestRouter(repo, "user-1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 10}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 0 and -1 are the same validation class: no error, no change.
	for _, body := range []string{`{"quantity": 0}`, `{"quantity": -1}`} {
		w = doJSON(t, r, http.MethodPut, "/user/cart/10", body)
		require.Equal(t, http.StatusOK, w.Code, body)

		payload := decodeCart(t, w)
		assert.Equal(t, 1, payload.ItemCount, body)
		assert.Equal(t, int64(100000), payload.TotalPrice, body)
	}
}

func TestSetQuantityMissingField(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{10: 100000})
	r := cartTestRouter(repo, "user-1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", `{"gadget_id": 10}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/user/cart/10", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetQuantityMissingLine(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{10: 100000})
	r := cartTestRouter(repo, "user-1")

	w := doJSON(t, r, http.MethodPut, "/user/cart/10", `{"quantity": 2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
