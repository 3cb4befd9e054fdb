package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/models"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

const statusNotifyTimeout = 15 * time.Second

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatusHandler moves an order to a new status. The dashboard
// treats any failure the same way, so errors collapse to success:false.
// The customer gets a WhatsApp status message when notifications are on.
func (h *AdminHandler) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil || order == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	if err := h.orderRepo.UpdateStatus(r.Context(), order.ID, status); err != nil {
		log.Printf("UpdateOrderStatusHandler: failed to update order %s to %s: %v", order.Code(), status, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	log.Printf("UpdateOrderStatusHandler: ✅ Order %s moved to %s", order.Code(), status)

	// Best effort only. The status change stands even if the message
	// never goes out.
	if h.notifier != nil {
		go func(order *models.Order, status models.OrderStatus) {
			ctx, cancel := context.WithTimeout(context.Background(), statusNotifyTimeout)
			defer cancel()
			h.notifier.SendOrderStatusUpdate(ctx, order, status)
		}(order, status)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// OrderDetailsHandler returns the rendered order detail fragment the
// dashboard injects into its modal.
func (h *AdminHandler) OrderDetailsHandler(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetOrderByIDWithRelations(r.Context(), orderID)
	if err != nil || order == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	var buf bytes.Buffer
	err = h.render.HTML(&buf, http.StatusOK, "admin/order_details", map[string]interface{}{
		"Order": order,
		"Items": order.OrderItems,
	}, render.HTMLOptions{Layout: ""})
	if err != nil {
		log.Printf("OrderDetailsHandler: failed to render details for order %s: %v", order.Code(), err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"html":    buf.String(),
	})
}

type filteredOrderData struct {
	ID          string             `json:"id"`
	FullName    string             `json:"full_name"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
}

// FilterOrdersHandler returns the latest orders in one status, or in any
// status when the filter is "all". Unknown statuses simply match nothing.
func (h *AdminHandler) FilterOrdersHandler(w http.ResponseWriter, r *http.Request) {
	rawStatus := mux.Vars(r)["status"]

	var (
		orders []models.Order
		err    error
	)
	if rawStatus == "all" {
		orders, err = h.orderRepo.FindRecent(r.Context(), recentOrdersLimit)
	} else if status, ok := models.ParseOrderStatus(rawStatus); ok {
		orders, err = h.orderRepo.FindByStatus(r.Context(), status, recentOrdersLimit)
	}
	if err != nil {
		log.Printf("FilterOrdersHandler: failed to filter orders by %q: %v", rawStatus, err)
		http.Error(w, "Failed to filter orders", http.StatusInternalServerError)
		return
	}

	filtered := make([]filteredOrderData, 0, len(orders))
	for _, order := range orders {
		filtered = append(filtered, filteredOrderData{
			ID:          order.ID,
			FullName:    order.FullName,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  filtered,
	})
}
