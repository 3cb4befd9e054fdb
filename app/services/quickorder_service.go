package services

import (
	"context"
	"fmt"
	"log"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/models/other"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/mannancrackers/shop/app/utils/calc"
	"github.com/shopspring/decimal"
)

// minQuickOrderItems pads thin bundles so every list offers some variety.
const minQuickOrderItems = 4

type quickOrderDefinition struct {
	ID            int
	Name          string
	Description   string
	Emoji         string
	Color         string
	CategoryFocus []string
}

// The five storefront bundles. Lists without a CategoryFocus draw from the
// whole catalog.
var quickOrderDefinitions = []quickOrderDefinition{
	{
		ID:          1,
		Name:        "🎆 Premium Diwali Package",
		Description: "Best-seller assortment with premium selections from all categories",
		Emoji:       "🎆",
		Color:       "#ff6b35",
	},
	{
		ID:            2,
		Name:          "👨‍👩‍👧‍👦 Family Celebration Pack",
		Description:   "Perfect for family gatherings - safe for kids and adults",
		Emoji:         "👨‍👩‍👧‍👦",
		Color:         "#4b0082",
		CategoryFocus: []string{"Family&Kids", "General"},
	},
	{
		ID:            3,
		Name:          "👦 Kids Delight Collection",
		Description:   "Fun and safe crackers for boys and girls",
		Emoji:         "👦",
		Color:         "#ff69b4",
		CategoryFocus: []string{"Boys", "Girls", "Family&Kids"},
	},
	{
		ID:          4,
		Name:        "✨ Festive Sparkler Set",
		Description: "Beautiful sparklers and flower pots for stunning displays",
		Emoji:       "✨",
		Color:       "#ffd700",
	},
	{
		ID:          5,
		Name:        "🎉 Grand Celebration Bundle",
		Description: "Ultimate assortment - everything for a complete celebration",
		Emoji:       "🎉",
		Color:       "#28a745",
	},
}

// QuickOrderCheckoutData is the payload the storefront uses to populate its
// cart after a bundle selection was verified.
type QuickOrderCheckoutData struct {
	CartItems   map[string]other.CartItem `json:"cart_items"`
	TotalAmount float64                   `json:"total_amount"`
	ListID      int                       `json:"list_id"`
}

type QuickOrderService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewQuickOrderService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *QuickOrderService {
	return &QuickOrderService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// BuildLists assembles the five quick-order bundles from the live catalog.
// Each bundle greedily takes the priciest candidates until it clears the
// minimum order amount, then pads up to four items if needed.
func (s *QuickOrderService) BuildLists(ctx context.Context) ([]other.QuickOrderList, error) {
	lists := make([]other.QuickOrderList, 0, len(quickOrderDefinitions))

	for _, def := range quickOrderDefinitions {
		pool, err := s.buildCandidatePool(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("failed to build candidates for list %d: %w", def.ID, err)
		}

		selected, total, err := s.selectBundleProducts(ctx, dedupeProducts(pool))
		if err != nil {
			return nil, fmt.Errorf("failed to select products for list %d: %w", def.ID, err)
		}

		products := make([]other.QuickOrderProduct, 0, len(selected))
		for _, p := range selected {
			products = append(products, other.QuickOrderProduct{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price.InexactFloat64(),
				Category: p.Category.Name,
				ImageURL: p.ImagePath,
				Quantity: 1,
			})
		}

		lists = append(lists, other.QuickOrderList{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Emoji:       def.Emoji,
			Color:       def.Color,
			Products:    products,
			Total:       total.InexactFloat64(),
			ItemCount:   len(products),
		})
	}

	return lists, nil
}

// buildCandidatePool collects the ordered candidates for one definition:
// focused lists pull categories matching each focus term, open lists walk
// every category. Within a category candidates come priciest first.
func (s *QuickOrderService) buildCandidatePool(ctx context.Context, def quickOrderDefinition) ([]models.Product, error) {
	var pool []models.Product

	if len(def.CategoryFocus) > 0 {
		for _, focus := range def.CategoryFocus {
			matches, err := s.productRepo.GetActiveByCategoryNameLike(ctx, focus)
			if err != nil {
				return nil, err
			}
			pool = append(pool, matches...)
		}
		return pool, nil
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		products, err := s.productRepo.GetActiveByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		pool = append(pool, products...)
	}
	return pool, nil
}

func (s *QuickOrderService) selectBundleProducts(ctx context.Context, pool []models.Product) ([]models.Product, decimal.Decimal, error) {
	selected := make([]models.Product, 0, len(pool))
	total := decimal.Zero

	for _, product := range pool {
		if calc.MeetsMinimum(total) {
			break
		}
		selected = append(selected, product)
		total = total.Add(product.Price)
	}

	if len(selected) < minQuickOrderItems {
		chosen := make(map[string]struct{}, len(selected))
		for _, p := range selected {
			chosen[p.ID] = struct{}{}
		}

		all, err := s.productRepo.GetAllActive(ctx)
		if err != nil {
			return nil, decimal.Zero, err
		}
		for _, p := range all {
			if len(selected) >= minQuickOrderItems {
				break
			}
			if _, ok := chosen[p.ID]; ok {
				continue
			}
			selected = append(selected, p)
			chosen[p.ID] = struct{}{}
		}

		total = decimal.Zero
		for _, p := range selected {
			total = total.Add(p.Price)
		}
	}

	return selected, total, nil
}

func dedupeProducts(products []models.Product) []models.Product {
	seen := make(map[string]struct{}, len(products))
	unique := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// PrepareCheckout verifies a bundle selection against the live catalog and
// returns the cart payload with authoritative database prices. Client
// prices are never trusted here.
func (s *QuickOrderService) PrepareCheckout(ctx context.Context, selection *other.QuickOrderSelection) (*QuickOrderCheckoutData, error) {
	if len(selection.Products) == 0 {
		return nil, &CheckoutError{
			Type:    ErrTypeValidation,
			Message: "No products selected",
			Code:    400,
		}
	}

	cartItems := make(map[string]other.CartItem, len(selection.Products))
	total := decimal.Zero

	for _, item := range selection.Products {
		product, err := s.productRepo.GetByID(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s: %w", item.ID, err)
		}
		if product == nil || !product.IsActive {
			return nil, &CheckoutError{
				Type:    ErrTypeNotFound,
				Message: "Product not found",
				Code:    404,
			}
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		if product.StockQuantity < quantity {
			return nil, &CheckoutError{
				Type:    ErrTypeStock,
				Message: fmt.Sprintf("Insufficient stock for %s", product.Name),
				Code:    400,
			}
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
		cartItems[product.ID] = other.CartItem{
			Name:     product.Name,
			Quantity: quantity,
			Price:    product.Price.InexactFloat64(),
		}
	}

	if !calc.MeetsMinimum(total) {
		return nil, &CheckoutError{
			Type: ErrTypeMinimumOrder,
			Message: fmt.Sprintf("Minimum order amount is ₹%s. Current total: ₹%s",
				calc.MinimumOrderAmount.String(), total.StringFixed(2)),
			Code: 400,
			Details: map[string]interface{}{
				"minimum_required": calc.MinimumOrderAmount.IntPart(),
				"current_total":    total.InexactFloat64(),
				"shortfall":        calc.Shortfall(total).InexactFloat64(),
				"cart_items":       cartItems,
				"list_id":          selection.ListID,
			},
		}
	}

	log.Printf("QuickOrderService: list %d verified, %d items totalling %s", selection.ListID, len(cartItems), total.StringFixed(2))

	return &QuickOrderCheckoutData{
		CartItems:   cartItems,
		TotalAmount: total.InexactFloat64(),
		ListID:      selection.ListID,
	}, nil
}
