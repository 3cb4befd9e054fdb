package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuickOrderTestHandler(db *gorm.DB) *QuickOrderHandler {
	return NewQuickOrderHandler(services.NewQuickOrderService(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
	))
}

func TestQuickOrderListsHandler(t *testing.T) {
	db := newTestDB(t)
	h := newQuickOrderTestHandler(db)
	category := seedCategory(t, db, "Mega Display Series")
	seedProduct(t, db, category, "AKASH GANGA 60 SHOTS", 2000, 15)
	seedProduct(t, db, category, "WONDER WHEEL 30 SHOTS", 1500, 15)
	seedProduct(t, db, category, "SILVER CROWN", 600, 15)

	rec := httptest.NewRecorder()
	h.QuickOrderListsHandler(rec, httptest.NewRequest(http.MethodGet, "/quick-order/lists", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	lists, ok := body["quick_order_lists"].([]interface{})
	require.True(t, ok)
	require.Len(t, lists, 5)

	first, ok := lists[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "🎆 Premium Diwali Package", first["name"])
	assert.Equal(t, float64(4100), first["total"])
	assert.Equal(t, float64(3), first["item_count"])

	products, ok := first["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 3)
	top, ok := products[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AKASH GANGA 60 SHOTS", top["name"])
	assert.Equal(t, float64(2000), top["price"])
	assert.Equal(t, float64(1), top["quantity"])
	assert.NotEmpty(t, top["id"])
}

func TestQuickOrderCheckoutHandler(t *testing.T) {
	db := newTestDB(t)
	h := newQuickOrderTestHandler(db)
	category := seedCategory(t, db, "Mega Display Series")
	big := seedProduct(t, db, category, "AKASH GANGA 60 SHOTS", 2000, 15)
	medium := seedProduct(t, db, category, "WONDER WHEEL 30 SHOTS", 1500, 15)
	small := seedProduct(t, db, category, "SILVER CROWN", 600, 15)

	post := func(body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/quick-order/checkout", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.QuickOrderCheckoutHandler(rec, r)
		return rec
	}

	t.Run("rejects malformed JSON", func(t *testing.T) {
		rec := post(`{"list_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid JSON data", body["error"])
	})

	t.Run("rejects an empty selection", func(t *testing.T) {
		rec := post(`{"list_id":1,"products":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "No products selected", body["error"])
	})

	t.Run("rejects unknown products", func(t *testing.T) {
		rec := post(`{"list_id":1,"products":[{"id":"missing","quantity":1}]}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Product not found", body["error"])
	})

	t.Run("rejects bundles under the minimum", func(t *testing.T) {
		rec := post(`{"list_id":3,"products":[{"id":"` + small.ID + `","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "minimum_order", body["error_type"])
		assert.Equal(t, float64(2400), body["shortfall"])
		assert.Equal(t, float64(3), body["list_id"])
	})

	t.Run("verifies the bundle and returns the cart payload", func(t *testing.T) {
		rec := post(`{"list_id":1,"products":[{"id":"` + big.ID + `","quantity":1},{"id":"` + medium.ID + `","quantity":1}]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Quick order added to cart successfully", body["message"])
		assert.Equal(t, true, body["ready_for_checkout"])
		assert.Equal(t, float64(3500), body["total_amount"])
		assert.Equal(t, float64(1), body["list_id"])

		cartItems, ok := body["cart_items"].(map[string]interface{})
		require.True(t, ok)
		require.Len(t, cartItems, 2)
		bigItem, ok := cartItems[big.ID].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "AKASH GANGA 60 SHOTS", bigItem["name"])
		assert.Equal(t, float64(2000), bigItem["price"])
		assert.Equal(t, float64(1), bigItem["quantity"])
	})

	t.Run("rejects selections beyond the stock", func(t *testing.T) {
		rec := post(`{"list_id":1,"products":[{"id":"` + big.ID + `","quantity":99}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "stock", body["error_type"])
		assert.Equal(t, "Insufficient stock for AKASH GANGA 60 SHOTS", body["error"])
	})
}
