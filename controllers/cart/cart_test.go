package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasrivero/boleta-api/cart"
	"github.com/lucasrivero/boleta-api/catalog"
)

func setup() (*gin.Engine, *cart.Store) {
	gin.SetMode(gin.TestMode)
	cat := catalog.Catalog{
		"A": decimal.RequireFromString("10"),
		"B": decimal.RequireFromString("50"),
	}
	store := cart.NewStore(cat)

	r := gin.New()
	r.GET("/pos/cart", GetCart(store, cat))
	r.POST("/pos/cart/items", AddCartItem(store))
	r.DELETE("/pos/cart/items", RemoveCartItems(store))
	r.POST("/pos/cart/undo", UndoRemove(store))
	r.POST("/pos/cart/sort", SortCart(store))
	return r, store
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItem(t *testing.T) {
	r, store := setup()

	w := do(r, http.MethodPost, "/pos/cart/items", `{"product":"A","quantity":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.Lines(), 1)
}

func TestAddCartItemInvalidQuantity(t *testing.T) {
	r, store := setup()

	w := do(r, http.MethodPost, "/pos/cart/items", `{"product":"A","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "positive integer")
	assert.Empty(t, store.Lines())
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, store := setup()

	w := do(r, http.MethodPost, "/pos/cart/items", `{"product":"Z","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
	assert.Empty(t, store.Lines())
}

func TestGetCartTotals(t *testing.T) {
	r, _ := setup()
	do(r, http.MethodPost, "/pos/cart/items", `{"product":"A","quantity":2}`)

	w := do(r, http.MethodGet, "/pos/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total decimal.Decimal `json:"total"`
		Lines []struct {
			Subtotal decimal.Decimal `json:"subtotal"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "20.00", resp.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", resp.Total.StringFixed(2))
}

func TestRemoveAndUndoRoundTrip(t *testing.T) {
	r, store := setup()
	do(r, http.MethodPost, "/pos/cart/items", `{"product":"A","quantity":2}`)
	id := store.Lines()[0].ID

	w := do(r, http.MethodDelete, "/pos/cart/items", `{"line_ids":["`+id+`"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Lines())

	w = do(r, http.MethodPost, "/pos/cart/undo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.Lines(), 1)
	assert.Equal(t, "A", store.Lines()[0].Product)
}

func TestRemoveWithoutSelection(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodDelete, "/pos/cart/items", `{"line_ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No items selected")
}

func TestUndoWithEmptyBuffer(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodPost, "/pos/cart/undo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing to undo")
}

func TestSortCartUnknownColumn(t *testing.T) {
	r, _ := setup()

	w := do(r, http.MethodPost, "/pos/cart/sort", `{"column":"color"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSortCartToggles(t *testing.T) {
	r, _ := setup()
	do(r, http.MethodPost, "/pos/cart/items", `{"product":"A","quantity":2}`)
	do(r, http.MethodPost, "/pos/cart/items", `{"product":"B","quantity":1}`)

	w := do(r, http.MethodPost, "/pos/cart/sort", `{"column":"subtotal"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ascending":true`)

	w = do(r, http.MethodPost, "/pos/cart/sort", `{"column":"subtotal"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ascending":false`)
}
