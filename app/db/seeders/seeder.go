package seeders

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/db/fakers"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultAdminEmail = "admin@mannancrackers.com"

// SeedCatalog wipes the catalog tables and recreates every category and
// product from the embedded price list. Stock levels are randomised between
// 10 and 100 so a fresh install has low-stock rows for the dashboard.
func SeedCatalog(db *gorm.DB) error {
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("seeders: clear products: %w", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
		return fmt.Errorf("seeders: clear categories: %w", err)
	}

	total := 0
	for i, cat := range fireworksCatalog {
		category := models.Category{
			ID:           uuid.New().String(),
			Name:         cat.name,
			Slug:         helpers.GenerateSlug(cat.name),
			Description:  fmt.Sprintf("Premium %s collection for Diwali celebrations", cat.name),
			DisplayOrder: i + 1,
		}
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("seeders: create category %q: %w", cat.name, err)
		}

		for _, p := range cat.products {
			id := uuid.New().String()
			product := models.Product{
				ID:            id,
				CategoryID:    category.ID,
				Name:          p.name,
				Slug:          helpers.GenerateSlug(p.name) + "-" + id[:8],
				Description:   fmt.Sprintf("%s - %s. Perfect for Diwali celebrations.", p.name, p.content),
				Price:         decimal.NewFromInt(p.price),
				StockQuantity: rand.Intn(91) + 10,
				IsActive:      true,
			}
			if err := db.Create(&product).Error; err != nil {
				return fmt.Errorf("seeders: create product %q: %w", p.name, err)
			}
			total++
		}
	}

	log.Printf("Seeders: ✅ catalog seeded, %d categories and %d products", len(fireworksCatalog), total)
	return nil
}

// SeedAdminUser creates the owner account unless a user with the given
// email already exists. It reports whether a new account was created.
func SeedAdminUser(db *gorm.DB, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := db.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Seeders: ⚠️ user %s already exists, keeping it", email)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("seeders: look up admin: %w", err)
	}

	admin := models.User{
		ID:         uuid.New().String(),
		FirstName:  "Mannan",
		LastName:   "Admin",
		Email:      email,
		Password:   helpers.HashPassword(password),
		Role:       models.RoleAdmin,
		IsApproved: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, fmt.Errorf("seeders: create admin: %w", err)
	}

	log.Printf("Seeders: ✅ admin account %s created", email)
	return true, nil
}

// SeedDemoData creates fake customers with order history so dashboards and
// order pages have content on a development install.
func SeedDemoData(db *gorm.DB, customers int) error {
	var products []models.Product
	if err := db.Where("is_active = ?", true).Limit(50).Find(&products).Error; err != nil {
		return fmt.Errorf("seeders: load products: %w", err)
	}

	for i := 0; i < customers; i++ {
		user := fakers.UserFaker()
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seeders: create demo customer: %w", err)
		}
		if len(products) == 0 {
			continue
		}
		order := fakers.OrderFaker(user, products)
		if err := db.Create(order).Error; err != nil {
			return fmt.Errorf("seeders: create demo order: %w", err)
		}
	}

	log.Printf("Seeders: ✅ %d demo customers with orders created", customers)
	return nil
}

// DBSeed provisions a database for first use: the full catalog plus the
// admin account, and optionally demo customers with orders. ADMIN_EMAIL and
// ADMIN_PASSWORD pick the admin credentials; without a password a random
// one is generated and printed once.
func DBSeed(db *gorm.DB, withDemo bool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	generated := false
	if password == "" {
		password = uuid.NewString()[:12]
		generated = true
	}

	if err := SeedCatalog(db); err != nil {
		return err
	}
	created, err := SeedAdminUser(db, email, password)
	if err != nil {
		return err
	}
	if created && generated {
		log.Printf("Seeders: 🔑 generated admin password for %s: %s", email, password)
	}
	if withDemo {
		if err := SeedDemoData(db, 5); err != nil {
			return err
		}
	}

	log.Println("Seeders: ✅ database seed complete")
	return nil
}
