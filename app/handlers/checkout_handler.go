package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/services"
)

// CheckoutHandler is the JSON surface the storefront cart talks to.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CheckoutGetHandler exists because the cart page probes the endpoint.
// The storefront only ever submits orders with POST.
func (h *CheckoutHandler) CheckoutGetHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": false,
		"error":   "Please use POST method for checkout",
	})
}

func (h *CheckoutHandler) CheckoutPostHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("CheckoutPostHandler: Failed to read request body: %v", err)
		writeCheckoutError(w, &services.CheckoutError{
			Type:    services.ErrTypeValidation,
			Message: "Invalid request data format",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var payload other.CheckoutPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("CheckoutPostHandler: Failed to decode payload: %v", err)
		writeCheckoutError(w, &services.CheckoutError{
			Type:    services.ErrTypeValidation,
			Message: "Invalid request data format",
			Code:    http.StatusBadRequest,
		})
		return
	}

	userID := middlewares.UserIDFromRequest(r)

	summary, err := h.checkoutService.ProcessCheckout(r.Context(), userID, &payload)
	if err != nil {
		writeServiceError(w, err, "An unexpected error occurred during checkout. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      "Order placed successfully!",
		"orderSummary": summary,
	})
}

type updateStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateStockHandler decrements stock for one product. The storefront
// calls it when the cart page reserves items.
func (h *CheckoutHandler) UpdateStockHandler(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   "Invalid request",
		})
		return
	}

	result, err := h.checkoutService.UpdateStock(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStockUnavailable):
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": false,
				"error":   "Not enough stock available",
			})
		case errors.Is(err, services.ErrProductMissing):
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": false,
				"error":   "Invalid request",
			})
		default:
			log.Printf("UpdateStockHandler: ❌ %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"error":   "An unexpected error occurred",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"new_stock":    result.NewStock,
		"is_low_stock": result.IsLowStock,
	})
}
