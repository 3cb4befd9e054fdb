package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/services"
)

// QuickOrderHandler serves the predefined bundle endpoints the storefront
// uses for one-click ordering.
type QuickOrderHandler struct {
	quickOrderService *services.QuickOrderService
}

func NewQuickOrderHandler(quickOrderService *services.QuickOrderService) *QuickOrderHandler {
	return &QuickOrderHandler{quickOrderService: quickOrderService}
}

// QuickOrderListsHandler returns the five curated bundles, each filled
// from the live catalog until it clears the minimum order amount.
func (h *QuickOrderHandler) QuickOrderListsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := h.quickOrderService.BuildLists(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to load quick order lists")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"quick_order_lists": lists,
	})
}

// QuickOrderCheckoutHandler verifies a bundle selection and hands the
// cart payload back so the frontend can populate its cart.
func (h *QuickOrderHandler) QuickOrderCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var selection other.QuickOrderSelection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		writeCheckoutError(w, &services.CheckoutError{
			Type:    services.ErrTypeValidation,
			Message: "Invalid JSON data",
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := h.quickOrderService.PrepareCheckout(r.Context(), &selection)
	if err != nil {
		writeServiceError(w, err, "Error processing quick order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":            true,
		"message":            "Quick order added to cart successfully",
		"cart_items":         data.CartItems,
		"total_amount":       data.TotalAmount,
		"list_id":            data.ListID,
		"ready_for_checkout": true,
	})
}
