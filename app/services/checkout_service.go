package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrStockUnavailable = errors.New("not enough stock available")
	ErrProductMissing   = errors.New("product not found")
)

// CheckoutErrorType tags a checkout failure so the handler can shape the
// JSON response without string matching.
type CheckoutErrorType string

const (
	ErrTypeValidation   CheckoutErrorType = "validation"
	ErrTypeNotFound     CheckoutErrorType = "not_found"
	ErrTypeStock        CheckoutErrorType = "stock"
	ErrTypeMinimumOrder CheckoutErrorType = "minimum_order"
	ErrTypeServer       CheckoutErrorType = "server"
)

// CheckoutError is the structured failure every checkout-path error is
// converted into before it reaches the transport layer.
type CheckoutError struct {
	Type    CheckoutErrorType
	Message string
	Code    int
	Details map[string]interface{}
}

func (e *CheckoutError) Error() string {
	return e.Message
}

// CheckoutResult is what after-commit hooks receive: the persisted order
// (items included) and the products this checkout pushed below the restock
// threshold.
type CheckoutResult struct {
	Order    *models.Order
	LowStock []models.Product
	Summary  *other.OrderSummary
}

// AfterCommitHook runs once the order transaction has committed. Hooks are
// best-effort: they may log failures but can never unwind the order.
type AfterCommitHook func(ctx context.Context, result *CheckoutResult)

type StockUpdateResult struct {
	NewStock   int
	IsLowStock bool
}

type CheckoutService struct {
	db            *gorm.DB
	productRepo   repositories.ProductRepositoryImpl
	userRepo      repositories.UserRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	afterCommit   []AfterCommitHook
}

func NewCheckoutService(
	db *gorm.DB,
	productRepo repositories.ProductRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		productRepo:   productRepo,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// RegisterAfterCommit appends a post-commit hook. Hooks run in registration
// order, synchronously, after a successful checkout. Call during startup
// wiring only.
func (s *CheckoutService) RegisterAfterCommit(hook AfterCommitHook) {
	s.afterCommit = append(s.afterCommit, hook)
}

func (s *CheckoutService) runAfterCommitHooks(ctx context.Context, result *CheckoutResult) {
	for _, hook := range s.afterCommit {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("CheckoutService: after-commit hook panicked for order %s: %v", result.Order.ID, r)
				}
			}()
			hook(ctx, result)
		}()
	}
}

// ProcessCheckout validates the submitted cart and atomically creates the
// order, its items and the stock decrements. userID is empty for guest
// checkout. Side effects (email, WhatsApp) run through the after-commit
// hooks and never affect the outcome.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, userID string, payload *other.CheckoutPayload) (*other.OrderSummary, error) {
	customer := payload.CustomerData

	if customer.FullName == "" || customer.Email == "" || customer.Phone == "" || customer.DeliveryAddress == "" {
		return nil, &CheckoutError{
			Type:    ErrTypeValidation,
			Message: "Please fill in all required fields",
			Code:    400,
		}
	}

	// Best-effort profile sync. A failure here is logged and swallowed so
	// it can never block the purchase.
	if userID != "" && customer.UpdateProfile {
		s.updateProfileFromCheckout(ctx, userID, customer)
	}

	if len(payload.CartItems) == 0 {
		return nil, &CheckoutError{
			Type:    ErrTypeValidation,
			Message: "Your cart is empty. Please add items before checking out.",
			Code:    400,
		}
	}

	total := calc.CartTotal(payload.CartItems)

	if !calc.MeetsMinimum(total) {
		shortfall := calc.Shortfall(total)
		return nil, &CheckoutError{
			Type: ErrTypeMinimumOrder,
			Message: fmt.Sprintf("Minimum order amount is ₹%s. Current total: ₹%s",
				calc.MinimumOrderAmount.String(), total.StringFixed(2)),
			Code: 400,
			Details: map[string]interface{}{
				"minimum_required": calc.MinimumOrderAmount.IntPart(),
				"current_total":    total.InexactFloat64(),
				"shortfall":        shortfall.InexactFloat64(),
			},
		}
	}

	// Deterministic iteration over the cart map.
	productIDs := make([]string, 0, len(payload.CartItems))
	for id := range payload.CartItems {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC: Rolling back checkout transaction: %v", r)
			tx.Rollback()
			panic(r)
		}
	}()

	orderItems := make([]models.OrderItem, 0, len(productIDs))
	products := make(map[string]*models.Product, len(productIDs))

	for _, productID := range productIDs {
		item := payload.CartItems[productID]

		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
		}
		if product == nil {
			tx.Rollback()
			return nil, &CheckoutError{
				Type:    ErrTypeNotFound,
				Message: fmt.Sprintf("Product with ID %s not found", productID),
				Code:    404,
			}
		}

		if product.StockQuantity < item.Quantity {
			tx.Rollback()
			return nil, &CheckoutError{
				Type:    ErrTypeStock,
				Message: fmt.Sprintf("Insufficient stock for %s. Available: %d", product.Name, product.StockQuantity),
				Code:    400,
			}
		}

		products[productID] = product
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       decimal.NewFromFloat(item.Price),
		})
	}

	order := &models.Order{
		FullName:    customer.FullName,
		Email:       customer.Email,
		Phone:       customer.Phone,
		Address:     customer.DeliveryAddress,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
	}
	if userID != "" {
		order.UserID = &userID
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}
	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	lowStock := []models.Product{}
	for _, productID := range productIDs {
		item := payload.CartItems[productID]
		if item.Quantity <= 0 {
			continue
		}

		// The guarded UPDATE is the authoritative stock check. The earlier
		// read only produced the friendly error message; if stock moved
		// underneath us since then, the guard catches it here.
		ok, err := s.productRepo.DecrementStock(ctx, tx, productID, item.Quantity)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to decrement stock for product %s: %w", productID, err)
		}
		if !ok {
			tx.Rollback()
			available := 0
			if fresh, err := s.productRepo.GetByID(ctx, productID); err == nil && fresh != nil {
				available = fresh.StockQuantity
			}
			return nil, &CheckoutError{
				Type:    ErrTypeStock,
				Message: fmt.Sprintf("Insufficient stock for %s. Available: %d", products[productID].Name, available),
				Code:    400,
			}
		}

		newStock := products[productID].StockQuantity - item.Quantity
		if newStock < models.LowStockThreshold {
			lowProduct := *products[productID]
			lowProduct.StockQuantity = newStock
			lowStock = append(lowStock, lowProduct)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	log.Printf("CheckoutService: ✅ order %s placed (%d items, total %s)", order.Code(), len(orderItems), total.StringFixed(2))

	order.OrderItems = orderItems
	summary := &other.OrderSummary{
		Customer: customer,
		Items:    payload.CartItems,
		Total:    total.InexactFloat64(),
		OrderID:  order.ID,
	}

	s.runAfterCommitHooks(ctx, &CheckoutResult{
		Order:    order,
		LowStock: lowStock,
		Summary:  summary,
	})

	return summary, nil
}

func (s *CheckoutService) updateProfileFromCheckout(ctx context.Context, userID string, customer other.CustomerData) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("CheckoutService: profile update skipped, user %s not loaded: %v", userID, err)
		return
	}

	user.SetFullName(customer.FullName)
	user.Phone = customer.Phone
	user.Address = customer.DeliveryAddress
	// Email stays untouched; changing it would need re-verification.

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("CheckoutService: profile update failed for user %s: %v", userID, err)
	}
}

// UpdateStock handles the storefront's stock reservation call: decrement
// when available, report the remaining quantity. A zero quantity is a
// no-op read.
func (s *CheckoutService) UpdateStock(ctx context.Context, productID string, quantity int) (*StockUpdateResult, error) {
	if productID == "" || quantity < 0 {
		return nil, ErrProductMissing
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductMissing
	}

	if quantity > 0 {
		ok, err := s.productRepo.DecrementStock(ctx, s.db, productID, quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrStockUnavailable
		}
		product.StockQuantity -= quantity
	}

	return &StockUpdateResult{
		NewStock:   product.StockQuantity,
		IsLowStock: product.IsLowStock(),
	}, nil
}
