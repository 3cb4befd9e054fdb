package fakers

import (
	"math/rand"

	"github.com/mannancrackers/shop/app/models"
	"github.com/shopspring/decimal"
)

// OrderFaker assembles a demo order for the given customer from up to three
// random catalog products. The total always matches the generated line
// items; IDs are filled in by the model hooks on create.
func OrderFaker(user *models.User, products []models.Product) *models.Order {
	count := rand.Intn(3) + 1
	if count > len(products) {
		count = len(products)
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, count)
	for _, idx := range rand.Perm(len(products))[:count] {
		p := products[idx]
		qty := rand.Intn(3) + 1
		items = append(items, models.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			Price:       p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	statuses := models.OrderStatuses()
	return &models.Order{
		UserID:      &user.ID,
		FullName:    user.FullName(),
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		TotalAmount: total,
		Status:      statuses[rand.Intn(len(statuses))],
		OrderItems:  items,
	}
}
