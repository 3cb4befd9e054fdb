package calc

import (
	"github.com/shopspring/decimal"

	"github.com/mannancrackers/shop/app/models/other"
)

// MinimumOrderAmount is the storefront policy floor: carts below ₹3000
// are rejected at checkout and quick order bundles are filled up to it.
var MinimumOrderAmount = decimal.NewFromInt(3000)

func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

func CartTotal(items map[string]other.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item.Price, item.Quantity))
	}
	return total
}

// Shortfall is how much a cart is below the minimum order amount. Zero or
// negative means the cart qualifies.
func Shortfall(total decimal.Decimal) decimal.Decimal {
	return MinimumOrderAmount.Sub(total)
}

func MeetsMinimum(total decimal.Decimal) bool {
	return total.GreaterThanOrEqual(MinimumOrderAmount)
}
