package routes

import (
	"context"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/handlers"
	"github.com/mannancrackers/shop/app/handlers/admin"
	"github.com/mannancrackers/shop/app/middlewares"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/services"
	"github.com/mannancrackers/shop/app/utils/renderer"
	"github.com/mannancrackers/shop/app/utils/sessions"
	"gorm.io/gorm"
)

const mediaDir = "media"

// NewRouter wires the repositories, services and handlers together and
// returns the full HTTP surface with its middleware chain applied.
func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) (http.Handler, error) {
	render := renderer.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	checkoutService := services.NewCheckoutService(db, productRepo, userRepo, orderRepo, orderItemRepo)
	quickOrderService := services.NewQuickOrderService(productRepo, categoryRepo)
	invoiceService := services.NewInvoiceService()
	mailer := services.NewMailer(services.Config{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	waCfg := configs.LoadWhatsAppConfig(env)
	var notifier services.NotificationService
	if waCfg.Enabled {
		waClient, err := services.NewWhatsAppClient(waCfg)
		if err != nil {
			return nil, err
		}
		notifier = services.NewNotificationService(waClient, waCfg)
	} else {
		log.Println("Routes: ⚠️ WhatsApp notifications disabled")
	}

	registerCheckoutHooks(checkoutService, mailer, notifier)

	errorHandler := handlers.NewErrorHandler(render)
	homeHandler := handlers.NewHomeHandler(render, categoryRepo, productRepo)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, validator.New())
	oauthHandler := handlers.NewOAuthHandler(configs.LoadGoogleOAuth(env), userRepo, sessionStore)
	profileHandler := handlers.NewProfileHandler(render, userRepo)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	quickOrderHandler := handlers.NewQuickOrderHandler(quickOrderService)
	orderHandler := handlers.NewOrderHandler(render, orderRepo, invoiceService)
	adminHandler := admin.NewAdminHandler(render, userRepo, productRepo, categoryRepo, orderRepo, notifier, mediaDir)

	// Role gates. The page variants render the 403 page, the JSON
	// variants answer with the API error envelope.
	approvedPage := middlewares.RequireRoles(errorHandler.Forbidden, models.RoleAdmin, models.RoleStaff, models.RoleCustomer)
	approvedJSON := middlewares.RequireRolesJSON(models.RoleAdmin, models.RoleStaff, models.RoleCustomer)
	staffPage := middlewares.RequireRoles(errorHandler.Forbidden, models.RoleAdmin, models.RoleStaff)
	staffJSON := middlewares.RequireRolesJSON(models.RoleAdmin, models.RoleStaff)
	adminPage := middlewares.RequireRoles(errorHandler.Forbidden, models.RoleAdmin)
	adminJSON := middlewares.RequireRolesJSON(models.RoleAdmin)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(errorHandler.NotFound)

	// Storefront.
	router.Handle("/", approvedPage(http.HandlerFunc(homeHandler.Home))).Methods(http.MethodGet)
	router.HandleFunc("/about", homeHandler.About).Methods(http.MethodGet)
	router.HandleFunc("/safety", homeHandler.Safety).Methods(http.MethodGet)
	router.HandleFunc("/contact", homeHandler.Contact).Methods(http.MethodGet)

	// Authentication.
	router.HandleFunc("/login", authHandler.LoginGetHandler).Methods(http.MethodGet)
	router.HandleFunc("/login", authHandler.LoginPostHandler).Methods(http.MethodPost)
	router.HandleFunc("/register", authHandler.RegisterGetHandler).Methods(http.MethodGet)
	router.HandleFunc("/register", authHandler.RegisterPostHandler).Methods(http.MethodPost)
	router.HandleFunc("/logout", authHandler.LogoutHandler).Methods(http.MethodGet)
	router.HandleFunc("/redirect", authHandler.RoleRedirectHandler).Methods(http.MethodGet)
	router.HandleFunc("/auth/google", oauthHandler.GoogleLoginHandler).Methods(http.MethodGet)
	router.HandleFunc("/auth/google/callback", oauthHandler.GoogleCallbackHandler).Methods(http.MethodGet)

	// Profile.
	router.Handle("/profile", approvedPage(http.HandlerFunc(profileHandler.ProfileGetHandler))).Methods(http.MethodGet)
	router.Handle("/profile", approvedPage(http.HandlerFunc(profileHandler.ProfilePostHandler))).Methods(http.MethodPost)

	// Cart and checkout API.
	router.Handle("/update-stock", approvedJSON(http.HandlerFunc(checkoutHandler.UpdateStockHandler))).Methods(http.MethodPost)
	router.Handle("/checkout", approvedJSON(http.HandlerFunc(checkoutHandler.CheckoutGetHandler))).Methods(http.MethodGet)
	router.Handle("/checkout", approvedJSON(http.HandlerFunc(checkoutHandler.CheckoutPostHandler))).Methods(http.MethodPost)
	router.Handle("/quick-order/lists", approvedJSON(http.HandlerFunc(quickOrderHandler.QuickOrderListsHandler))).Methods(http.MethodGet)
	router.Handle("/quick-order/checkout", approvedJSON(http.HandlerFunc(quickOrderHandler.QuickOrderCheckoutHandler))).Methods(http.MethodPost)

	// Customer orders.
	router.Handle("/orders", approvedPage(http.HandlerFunc(orderHandler.OrdersPageHandler))).Methods(http.MethodGet)
	router.Handle("/orders/{id}/update-address", approvedJSON(http.HandlerFunc(orderHandler.UpdateOrderAddressHandler))).Methods(http.MethodPost)
	router.Handle("/orders/{id}/invoice", approvedPage(http.HandlerFunc(orderHandler.DownloadInvoiceHandler))).Methods(http.MethodGet)

	// Admin dashboard and order management.
	router.Handle("/admin/dashboard", adminPage(http.HandlerFunc(adminHandler.DashboardPageHandler))).Methods(http.MethodGet)
	router.Handle("/admin/dashboard-data", adminJSON(http.HandlerFunc(adminHandler.DashboardDataHandler))).Methods(http.MethodGet)
	router.Handle("/admin/update-order-status/{id}", adminJSON(http.HandlerFunc(adminHandler.UpdateOrderStatusHandler))).Methods(http.MethodPost)
	router.Handle("/admin/order-details/{id}", adminJSON(http.HandlerFunc(adminHandler.OrderDetailsHandler))).Methods(http.MethodGet)
	router.Handle("/admin/filter-orders/{status}", adminJSON(http.HandlerFunc(adminHandler.FilterOrdersHandler))).Methods(http.MethodGet)
	router.Handle("/admin/quick-add-stock", adminJSON(http.HandlerFunc(adminHandler.QuickAddStockHandler))).Methods(http.MethodPost)

	// Admin user and category management.
	router.Handle("/admin/users", adminPage(http.HandlerFunc(adminHandler.UsersPageHandler))).Methods(http.MethodGet)
	router.Handle("/admin/users/{id}/approve", adminPage(http.HandlerFunc(adminHandler.ApproveUserHandler))).Methods(http.MethodPost)
	router.Handle("/admin/users/{id}/role", adminPage(http.HandlerFunc(adminHandler.UpdateUserRoleHandler))).Methods(http.MethodPost)
	router.Handle("/admin/categories", adminPage(http.HandlerFunc(adminHandler.CategoriesPageHandler))).Methods(http.MethodGet)
	router.Handle("/admin/categories", adminPage(http.HandlerFunc(adminHandler.CreateCategoryHandler))).Methods(http.MethodPost)
	router.Handle("/admin/categories/{id}/update", adminPage(http.HandlerFunc(adminHandler.UpdateCategoryHandler))).Methods(http.MethodPost)
	router.Handle("/admin/categories/{id}/delete", adminPage(http.HandlerFunc(adminHandler.DeleteCategoryHandler))).Methods(http.MethodPost)

	// Staff inventory.
	router.Handle("/staff/inventory", staffPage(http.HandlerFunc(adminHandler.InventoryPageHandler))).Methods(http.MethodGet)
	router.Handle("/staff/inventory", staffJSON(http.HandlerFunc(adminHandler.SaveProductHandler))).Methods(http.MethodPost)
	router.Handle("/staff/products/{id}", staffJSON(http.HandlerFunc(adminHandler.GetProductHandler))).Methods(http.MethodGet)
	router.Handle("/staff/products/{id}", staffJSON(http.HandlerFunc(adminHandler.DeleteProductHandler))).Methods(http.MethodDelete)

	// Error page previews.
	router.HandleFunc("/error/{code}", errorHandler.ErrorPageHandler).Methods(http.MethodGet)

	// Assets and uploaded media.
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	router.PathPrefix("/media/").Handler(http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	csrfProtect := csrf.Protect(
		[]byte(env.CSRFKey),
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	)

	var handler http.Handler = router
	handler = csrfProtect(handler)
	handler = middlewares.AuthSessionMiddleware(sessionStore, userRepo)(handler)
	handler = middlewares.MethodOverrideMiddleware(handler)
	handler = middlewares.MaintenanceMiddleware(env.MaintenanceMode, errorHandler.Maintenance)(handler)
	handler = middlewares.RecoveryMiddleware(errorHandler.InternalServerError)(handler)

	return handler, nil
}

// registerCheckoutHooks attaches the post-commit side effects of a
// successful checkout: confirmation email, low-stock alerts and the
// WhatsApp fan-out. All of them are best-effort.
func registerCheckoutHooks(checkoutService *services.CheckoutService, mailer *services.Mailer, notifier services.NotificationService) {
	checkoutService.RegisterAfterCommit(func(ctx context.Context, result *services.CheckoutResult) {
		if err := mailer.SendOrderConfirmation(result.Order); err != nil {
			log.Printf("Routes: failed to send confirmation email for order %s: %v", result.Order.ID, err)
		}
	})

	checkoutService.RegisterAfterCommit(func(ctx context.Context, result *services.CheckoutResult) {
		for i := range result.LowStock {
			if err := mailer.SendLowStockAlert(&result.LowStock[i]); err != nil {
				log.Printf("Routes: failed to send low-stock alert for product %s: %v", result.LowStock[i].ID, err)
			}
		}
	})

	if notifier != nil {
		checkoutService.RegisterAfterCommit(func(ctx context.Context, result *services.CheckoutResult) {
			notifier.SendOrderNotifications(ctx, result.Order)
		})
	}
}
