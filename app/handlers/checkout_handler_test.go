package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutTestHandler(db *gorm.DB) *CheckoutHandler {
	return NewCheckoutHandler(services.NewCheckoutService(
		db,
		repositories.NewProductRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
	))
}

func postCheckout(h *CheckoutHandler, user *models.User, payload interface{}) *httptest.ResponseRecorder {
	var body []byte
	switch raw := payload.(type) {
	case string:
		body = []byte(raw)
	default:
		body, _ = json.Marshal(payload)
	}

	r := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CheckoutPostHandler(rec, withUser(r, user))
	return rec
}

func TestCheckoutGetHandler(t *testing.T) {
	h := newCheckoutTestHandler(newTestDB(t))

	rec := httptest.NewRecorder()
	h.CheckoutGetHandler(rec, httptest.NewRequest(http.MethodGet, "/checkout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please use POST method for checkout", body["error"])
}

func TestCheckoutPostHandler(t *testing.T) {
	db := newTestDB(t)
	h := newCheckoutTestHandler(db)
	user := seedUser(t, db, "priya@example.com", "secret123", models.RoleCustomer)
	category := seedCategory(t, db, "Gift Box 2025")
	product := seedProduct(t, db, category, "30 ITEMS GIFT BOX", 1200, 20)

	payload := func(quantity int, updateProfile bool) other.CheckoutPayload {
		return other.CheckoutPayload{
			CustomerData: other.CustomerData{
				FullName:        "Priya Raman",
				Email:           "priya@example.com",
				Phone:           "9876543210",
				DeliveryAddress: "12 Market Road, Sivakasi",
				UpdateProfile:   updateProfile,
			},
			CartItems: map[string]other.CartItem{
				product.ID: {Name: product.Name, Price: 1200, Quantity: quantity},
			},
		}
	}

	t.Run("rejects malformed JSON", func(t *testing.T) {
		rec := postCheckout(h, user, `{"customerData":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid request data format", body["error"])
		assert.Equal(t, "validation", body["error_type"])
	})

	t.Run("rejects missing customer fields", func(t *testing.T) {
		p := payload(3, false)
		p.CustomerData.Phone = ""
		rec := postCheckout(h, user, p)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Please fill in all required fields", body["error"])
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		p := payload(3, false)
		p.CartItems = map[string]other.CartItem{}
		rec := postCheckout(h, user, p)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Your cart is empty. Please add items before checking out.", body["error"])
	})

	t.Run("rejects carts under the minimum with the shortfall", func(t *testing.T) {
		rec := postCheckout(h, user, payload(2, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "minimum_order", body["error_type"])
		assert.Contains(t, body["error"], "Minimum order amount is ₹3000")
		assert.Equal(t, float64(3000), body["minimum_required"])
		assert.Equal(t, float64(2400), body["current_total"])
		assert.Equal(t, float64(600), body["shortfall"])
	})

	t.Run("places the order and decrements stock", func(t *testing.T) {
		rec := postCheckout(h, user, payload(3, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Order placed successfully!", body["message"])

		summary, ok := body["orderSummary"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(3600), summary["total"])
		assert.NotEmpty(t, summary["order_id"])

		var order models.Order
		require.NoError(t, db.Preload("OrderItems").First(&order, "id = ?", summary["order_id"]).Error)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		require.NotNil(t, order.UserID)
		assert.Equal(t, user.ID, *order.UserID)
		require.Len(t, order.OrderItems, 1)
		assert.Equal(t, 3, order.OrderItems[0].Quantity)

		var fresh models.Product
		require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
		assert.Equal(t, 17, fresh.StockQuantity)

		// updateProfile was set, so the contact fields followed the order.
		updated, err := repositories.NewUserRepository(db).FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "9876543210", updated.Phone)
		assert.Equal(t, "12 Market Road, Sivakasi", updated.Address)
	})

	t.Run("rejects more than the available stock", func(t *testing.T) {
		rec := postCheckout(h, user, payload(99, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "stock", body["error_type"])
		assert.True(t, strings.HasPrefix(body["error"].(string), "Insufficient stock for "+product.Name))
	})
}

func TestUpdateStockHandler(t *testing.T) {
	db := newTestDB(t)
	h := newCheckoutTestHandler(db)
	category := seedCategory(t, db, "Sparklers")
	product := seedProduct(t, db, category, "12 CM ELECTRIC SPARKLER", 75, 30)

	post := func(body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/update-stock", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.UpdateStockHandler(rec, r)
		return rec
	}

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := post(`{"product_id":`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid request", body["error"])
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		rec := post(`{"product_id":"missing","quantity":1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid request", body["error"])
	})

	t.Run("rejects more than available", func(t *testing.T) {
		rec := post(`{"product_id":"` + product.ID + `","quantity":99}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Not enough stock available", body["error"])
	})

	t.Run("decrements and reports the new level", func(t *testing.T) {
		rec := post(`{"product_id":"` + product.ID + `","quantity":22}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(8), body["new_stock"])
		assert.Equal(t, true, body["is_low_stock"])
	})
}
