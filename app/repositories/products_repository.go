package repositories

import (
	"context"
	"strings"

	"github.com/mannancrackers/shop/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetAllForInventory(ctx context.Context) ([]models.Product, error)
	GetAllActive(ctx context.Context) ([]models.Product, error)
	SearchByName(ctx context.Context, keyword string) ([]models.Product, error)
	GetActiveByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	GetActiveByCategoryNameLike(ctx context.Context, fragment string) ([]models.Product, error)
	GetLowStock(ctx context.Context) ([]models.Product, error)
	CountAll(ctx context.Context) (int64, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) (bool, error)
	IncrementStock(ctx context.Context, productID string, quantity int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetAllForInventory lists every product, inactive ones included, the way
// the staff inventory screen shows them: grouped by category then name.
func (p *productRepository) GetAllForInventory(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("categories.name ASC, products.name ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetAllActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) SearchByName(ctx context.Context, keyword string) ([]models.Product, error) {
	var products []models.Product
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("LOWER(name) LIKE ?", searchKeyword).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetActiveByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("price DESC").
		Find(&products).Error
	return products, err
}

// GetActiveByCategoryNameLike matches products whose category name contains
// the fragment, priciest first. The quick-order builder fills bundles from
// this ordering.
func (p *productRepository) GetActiveByCategoryNameLike(ctx context.Context, fragment string) ([]models.Product, error) {
	var products []models.Product
	searchFragment := "%" + strings.ToLower(fragment) + "%"

	err := p.db.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("LOWER(c.name) LIKE ?", searchFragment).
		Where("products.is_active = ?", true).
		Order("products.price DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetLowStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("stock_quantity < ?", models.LowStockThreshold).
		Order("stock_quantity ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

// DecrementStock subtracts quantity from stock in a single guarded UPDATE.
// The WHERE clause keeps the row untouched when stock is short, so two
// concurrent checkouts can never drive stock negative. Returns false when
// the guard rejected the update.
func (p *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) (bool, error) {
	result := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (p *productRepository) IncrementStock(ctx context.Context, productID string, quantity int) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).Error
}
