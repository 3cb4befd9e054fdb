package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/models/migrations"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/renderer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
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

func testRender() *render.Render {
	return renderer.NewWithDir("../../../templates")
}

// newTestAdminHandler wires a handler against real repositories, no
// notifier and a throwaway media directory, which is also returned so
// upload tests can look inside it.
func newTestAdminHandler(t *testing.T, db *gorm.DB) (*AdminHandler, string) {
	t.Helper()

	mediaDir := t.TempDir()
	handler := NewAdminHandler(
		testRender(),
		repositories.NewUserRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewOrderRepository(db),
		nil,
		mediaDir,
	)
	return handler, mediaDir
}

func withUser(r *http.Request, user *models.User) *http.Request {
	if user == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
	return r.WithContext(ctx)
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:  "Meena",
		LastName:   "Shankar",
		Email:      email,
		Password:   "crackers@123",
		Role:       role,
		IsApproved: true,
	}
	require.NoError(t, repositories.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: helpers.GenerateSlug(name),
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

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus, total float64, items []models.OrderItem) *models.Order {
	t.Helper()

	order := &models.Order{
		FullName:    "Meena Shankar",
		Email:       "meena@example.com",
		Phone:       "9876543210",
		Address:     "7 Bazaar Street, Sivakasi",
		TotalAmount: decimal.NewFromFloat(total),
		Status:      status,
		OrderItems:  items,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
