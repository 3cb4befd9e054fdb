package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/models/migrations"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "shop_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repositories.NewProductRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
	)
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: "cat-" + uuid.New().String()[:8],
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, category *models.Category, name string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:            uuid.New().String(),
		CategoryID:    category.ID,
		Name:          name,
		Slug:          "prod-" + uuid.New().String()[:8],
		Price:         decimal.NewFromFloat(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func validCustomer() other.CustomerData {
	return other.CustomerData{
		FullName:        "Asha Verma",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		DeliveryAddress: "12 Market Road, Sivakasi",
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func currentStock(t *testing.T, db *gorm.DB, productID string) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", productID).Error)
	return product.StockQuantity
}

func TestProcessCheckoutSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Aerial Shots")
	product := seedProduct(t, db, category, "Sky Thunder 100", 3500, 10)

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			product.ID: {Name: product.Name, Price: 3500, Quantity: 1},
		},
	}

	summary, err := svc.ProcessCheckout(context.Background(), "", payload)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 3500.0, summary.Total)
	assert.NotEmpty(t, summary.OrderID)

	var order models.Order
	require.NoError(t, db.Preload("OrderItems").First(&order, "id = ?", summary.OrderID).Error)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(3500)), "total was %s", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.UserID)
	assert.Equal(t, "Asha Verma", order.FullName)

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, product.ID, order.OrderItems[0].ProductID)
	assert.Equal(t, "Sky Thunder 100", order.OrderItems[0].ProductName)
	assert.Equal(t, 1, order.OrderItems[0].Quantity)

	assert.Equal(t, 9, currentStock(t, db, product.ID))
}

func TestProcessCheckoutBelowMinimum(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Sparklers")
	product := seedProduct(t, db, category, "Sparklers 30cm", 1000, 10)

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			product.ID: {Name: product.Name, Price: 1000, Quantity: 2},
		},
	}

	_, err := svc.ProcessCheckout(context.Background(), "", payload)
	require.Error(t, err)

	var checkoutErr *CheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, ErrTypeMinimumOrder, checkoutErr.Type)
	assert.Equal(t, 400, checkoutErr.Code)
	assert.Equal(t, "Minimum order amount is ₹3000. Current total: ₹2000.00", checkoutErr.Message)
	assert.Equal(t, 2000.0, checkoutErr.Details["current_total"])
	assert.Equal(t, 1000.0, checkoutErr.Details["shortfall"])

	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
	assert.Equal(t, 10, currentStock(t, db, product.ID))
}

func TestProcessCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)

	t.Run("missing customer fields", func(t *testing.T) {
		customer := validCustomer()
		customer.Phone = ""
		payload := &other.CheckoutPayload{
			CustomerData: customer,
			CartItems:    map[string]other.CartItem{"x": {Price: 3500, Quantity: 1}},
		}

		_, err := svc.ProcessCheckout(context.Background(), "", payload)
		var checkoutErr *CheckoutError
		require.ErrorAs(t, err, &checkoutErr)
		assert.Equal(t, ErrTypeValidation, checkoutErr.Type)
		assert.Equal(t, "Please fill in all required fields", checkoutErr.Message)
	})

	t.Run("empty cart", func(t *testing.T) {
		payload := &other.CheckoutPayload{
			CustomerData: validCustomer(),
			CartItems:    map[string]other.CartItem{},
		}

		_, err := svc.ProcessCheckout(context.Background(), "", payload)
		var checkoutErr *CheckoutError
		require.ErrorAs(t, err, &checkoutErr)
		assert.Equal(t, ErrTypeValidation, checkoutErr.Type)
		assert.Equal(t, "Your cart is empty. Please add items before checking out.", checkoutErr.Message)
	})
}

func TestProcessCheckoutUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			"missing-product": {Name: "Ghost", Price: 3500, Quantity: 1},
		},
	}

	_, err := svc.ProcessCheckout(context.Background(), "", payload)
	var checkoutErr *CheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, ErrTypeNotFound, checkoutErr.Type)
	assert.Equal(t, 404, checkoutErr.Code)
	assert.Equal(t, "Product with ID missing-product not found", checkoutErr.Message)

	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
}

func TestProcessCheckoutInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Ground Spinners")
	plenty := seedProduct(t, db, category, "Colour Fountain", 2000, 50)
	scarce := seedProduct(t, db, category, "Whistling Wheel", 2000, 2)

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			plenty.ID: {Name: plenty.Name, Price: 2000, Quantity: 1},
			scarce.ID: {Name: scarce.Name, Price: 2000, Quantity: 5},
		},
	}

	_, err := svc.ProcessCheckout(context.Background(), "", payload)
	var checkoutErr *CheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, ErrTypeStock, checkoutErr.Type)
	assert.Equal(t, "Insufficient stock for Whistling Wheel. Available: 2", checkoutErr.Message)

	// Atomicity: the valid line must not be applied either.
	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.OrderItem{}))
	assert.Equal(t, 50, currentStock(t, db, plenty.ID))
	assert.Equal(t, 2, currentStock(t, db, scarce.ID))
}

func TestProcessCheckoutFailureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Rockets")
	product := seedProduct(t, db, category, "Baby Rocket", 500, 3)

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			product.ID: {Name: product.Name, Price: 4000, Quantity: 5},
		},
	}

	for i := 0; i < 2; i++ {
		_, err := svc.ProcessCheckout(context.Background(), "", payload)
		var checkoutErr *CheckoutError
		require.ErrorAs(t, err, &checkoutErr)
		assert.Equal(t, ErrTypeStock, checkoutErr.Type)
		assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
		assert.Equal(t, 3, currentStock(t, db, product.ID))
	}
}

func TestProcessCheckoutUpdatesProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Gift Boxes")
	product := seedProduct(t, db, category, "Festive Box", 3200, 10)

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Old",
		LastName:  "Name",
		Email:     "old@example.com",
		Role:      models.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)

	customer := validCustomer()
	customer.UpdateProfile = true
	payload := &other.CheckoutPayload{
		CustomerData: customer,
		CartItems: map[string]other.CartItem{
			product.ID: {Name: product.Name, Price: 3200, Quantity: 1},
		},
	}

	summary, err := svc.ProcessCheckout(context.Background(), user.ID, payload)
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", summary.OrderID).Error)
	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "Asha", updated.FirstName)
	assert.Equal(t, "Verma", updated.LastName)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "12 Market Road, Sivakasi", updated.Address)
	assert.Equal(t, "old@example.com", updated.Email)
}

func TestProcessCheckoutAfterCommitHooks(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Fountains")
	product := seedProduct(t, db, category, "Glitter Fountain", 3500, 5)

	var hookResult *CheckoutResult
	svc.RegisterAfterCommit(func(ctx context.Context, result *CheckoutResult) {
		panic("first hook down")
	})
	svc.RegisterAfterCommit(func(ctx context.Context, result *CheckoutResult) {
		hookResult = result
	})

	payload := &other.CheckoutPayload{
		CustomerData: validCustomer(),
		CartItems: map[string]other.CartItem{
			product.ID: {Name: product.Name, Price: 3500, Quantity: 1},
		},
	}

	summary, err := svc.ProcessCheckout(context.Background(), "", payload)
	require.NoError(t, err, "a panicking hook must not fail the checkout")

	require.NotNil(t, hookResult, "later hooks still run after an earlier one panics")
	assert.Equal(t, summary.OrderID, hookResult.Order.ID)
	require.Len(t, hookResult.Order.OrderItems, 1)

	require.Len(t, hookResult.LowStock, 1)
	assert.Equal(t, product.ID, hookResult.LowStock[0].ID)
	assert.Equal(t, 4, hookResult.LowStock[0].StockQuantity)
}

func TestUpdateStock(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db)
	category := seedCategory(t, db, "Chakkars")

	t.Run("decrements and reports low stock", func(t *testing.T) {
		product := seedProduct(t, db, category, "Ground Chakkar", 150, 12)

		result, err := svc.UpdateStock(context.Background(), product.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 9, result.NewStock)
		assert.True(t, result.IsLowStock)
		assert.Equal(t, 9, currentStock(t, db, product.ID))
	})

	t.Run("rejects when stock is short", func(t *testing.T) {
		product := seedProduct(t, db, category, "Big Chakkar", 300, 2)

		_, err := svc.UpdateStock(context.Background(), product.ID, 5)
		assert.ErrorIs(t, err, ErrStockUnavailable)
		assert.Equal(t, 2, currentStock(t, db, product.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.UpdateStock(context.Background(), "nope", 1)
		assert.ErrorIs(t, err, ErrProductMissing)
	})

	t.Run("zero quantity is a read", func(t *testing.T) {
		product := seedProduct(t, db, category, "Mini Chakkar", 80, 30)

		result, err := svc.UpdateStock(context.Background(), product.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 30, result.NewStock)
		assert.False(t, result.IsLowStock)
	})
}
