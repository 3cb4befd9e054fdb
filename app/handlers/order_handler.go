package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render         *render.Render
	orderRepo      repositories.OrderRepository
	invoiceService *services.InvoiceService
}

func NewOrderHandler(render *render.Render, orderRepo repositories.OrderRepository, invoiceService *services.InvoiceService) *OrderHandler {
	return &OrderHandler{
		render:         render,
		orderRepo:      orderRepo,
		invoiceService: invoiceService,
	}
}

// orderView pairs an order with its item count so the template does not
// have to sum quantities itself.
type orderView struct {
	models.Order
	TotalItems int
}

// OrdersPageHandler renders the customer's order history with the spend
// and status summary shown above the list.
func (h *OrderHandler) OrdersPageHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orders, err := h.orderRepo.FindByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("OrdersPageHandler: failed to load orders for user %s: %v", user.ID, err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	views := make([]orderView, 0, len(orders))
	totalSpent := decimal.Zero
	pendingOrders := 0

	for _, order := range orders {
		totalItems := 0
		for _, item := range order.OrderItems {
			totalItems += item.Quantity
		}
		views = append(views, orderView{Order: order, TotalItems: totalItems})

		switch order.Status {
		case models.OrderStatusDelivered:
			totalSpent = totalSpent.Add(order.TotalAmount)
		case models.OrderStatusPending:
			pendingOrders++
		}
	}

	var recentOrder *orderView
	if len(views) > 0 {
		recentOrder = &views[0]
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "My Orders", URL: "/orders"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "My Orders",
		"Breadcrumbs":   breadcrumbs,
		"Orders":        views,
		"TotalOrders":   len(views),
		"TotalSpent":    totalSpent,
		"PendingOrders": pendingOrders,
		"RecentOrder":   recentOrder,
	})
	_ = h.render.HTML(w, http.StatusOK, "orders", data)
}

type updateAddressRequest struct {
	DeliveryAddress *string `json:"delivery_address"`
}

// UpdateOrderAddressHandler lets a customer fix the delivery address on
// their own order. Every failure collapses to success:false so the modal
// can simply retry.
func (h *OrderHandler) UpdateOrderAddressHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	orderID := mux.Vars(r)["id"]

	var req updateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeliveryAddress == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil || order == nil || user == nil || order.UserID == nil || *order.UserID != user.ID {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	if err := h.orderRepo.UpdateDeliveryAddress(r.Context(), order.ID, *req.DeliveryAddress); err != nil {
		log.Printf("UpdateOrderAddressHandler: failed to update address for order %s: %v", order.Code(), err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// DownloadInvoiceHandler streams the PDF invoice for one of the
// customer's own orders. Orders belonging to anyone else read as not
// found rather than forbidden.
func (h *OrderHandler) DownloadInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromRequest(r)
	orderID := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), orderID)
	if err != nil {
		log.Printf("DownloadInvoiceHandler: failed to load order %s: %v", orderID, err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}
	if order == nil || user == nil || order.UserID == nil || *order.UserID != user.ID {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	pdfBytes, err := h.invoiceService.BuildInvoicePDF(order)
	if err != nil {
		log.Printf("DownloadInvoiceHandler: failed to render invoice for order %s: %v", order.Code(), err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.invoiceService.Filename(order)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
