package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

const recentOrdersLimit = 10

// AdminHandler serves the back-office surfaces: the admin dashboard, order
// management, user administration, category management and the staff
// inventory screen. Role gates live in the router, not here.
type AdminHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	orderRepo    repositories.OrderRepository
	notifier     services.NotificationService
	mediaDir     string
}

func NewAdminHandler(
	render *render.Render,
	userRepo repositories.UserRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	orderRepo repositories.OrderRepository,
	notifier services.NotificationService,
	mediaDir string,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
		mediaDir:     mediaDir,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("admin.writeJSON: failed to encode response: %v", err)
	}
}

// statusChoices returns every order status as a [value, label] pair, the
// shape the dashboard's status dropdowns consume.
func statusChoices() [][]string {
	statuses := models.OrderStatuses()
	choices := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		choices = append(choices, []string{status.String(), status.Label()})
	}
	return choices
}

type dashboardMetrics struct {
	totalUsers    int64
	totalProducts int64
	totalOrders   int64
	totalRevenue  decimal.Decimal
	recentOrders  []models.Order
	lowStock      []models.Product
}

func (h *AdminHandler) loadDashboardMetrics(r *http.Request) (*dashboardMetrics, error) {
	ctx := r.Context()
	m := &dashboardMetrics{}
	var err error

	if m.totalUsers, err = h.userRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if m.totalProducts, err = h.productRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if m.totalOrders, err = h.orderRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if m.totalRevenue, err = h.orderRepo.SumDeliveredRevenue(ctx); err != nil {
		return nil, err
	}
	if m.recentOrders, err = h.orderRepo.FindRecent(ctx, recentOrdersLimit); err != nil {
		return nil, err
	}
	if m.lowStock, err = h.productRepo.GetLowStock(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// DashboardPageHandler renders the admin landing page with store totals,
// the latest orders and every product running low on stock.
func (h *AdminHandler) DashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.loadDashboardMetrics(r)
	if err != nil {
		log.Printf("DashboardPageHandler: failed to load metrics: %v", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin Dashboard", URL: "/admin/dashboard"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":            "Admin Dashboard",
		"Breadcrumbs":      breadcrumbs,
		"TotalUsers":       metrics.totalUsers,
		"TotalProducts":    metrics.totalProducts,
		"TotalOrders":      metrics.totalOrders,
		"TotalRevenue":     metrics.totalRevenue,
		"RecentOrders":     metrics.recentOrders,
		"LowStockProducts": metrics.lowStock,
		"StatusChoices":    statusChoices(),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}

type dashboardOrderData struct {
	ID            string             `json:"id"`
	FullName      string             `json:"full_name"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        models.OrderStatus `json:"status"`
	StatusChoices [][]string         `json:"status_choices"`
}

type dashboardProductData struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
}

// DashboardDataHandler feeds the dashboard's polling refresh with the same
// numbers as the page itself.
func (h *AdminHandler) DashboardDataHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.loadDashboardMetrics(r)
	if err != nil {
		log.Printf("DashboardDataHandler: failed to load metrics: %v", err)
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}

	choices := statusChoices()
	recent := make([]dashboardOrderData, 0, len(metrics.recentOrders))
	for _, order := range metrics.recentOrders {
		recent = append(recent, dashboardOrderData{
			ID:            order.ID,
			FullName:      order.FullName,
			TotalAmount:   order.TotalAmount,
			Status:        order.Status,
			StatusChoices: choices,
		})
	}

	lowStock := make([]dashboardProductData, 0, len(metrics.lowStock))
	for _, product := range metrics.lowStock {
		lowStock = append(lowStock, dashboardProductData{
			ID:            product.ID,
			Name:          product.Name,
			StockQuantity: product.StockQuantity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users":        metrics.totalUsers,
		"total_products":     metrics.totalProducts,
		"total_orders":       metrics.totalOrders,
		"total_revenue":      metrics.totalRevenue,
		"recent_orders":      recent,
		"low_stock_products": lowStock,
	})
}
