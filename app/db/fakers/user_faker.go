package fakers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
)

// demoCities keeps generated addresses plausible for a Sivakasi fireworks
// store shipping within Tamil Nadu.
var demoCities = []string{
	"Sivakasi",
	"Madurai",
	"Chennai",
	"Coimbatore",
	"Tiruchirappalli",
	"Virudhunagar",
}

// UserFaker builds an approved demo customer with a random identity. Every
// demo account uses the password "password".
func UserFaker() *models.User {
	first := faker.FirstName()
	last := faker.LastName()
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(faker.Email()),
		Phone:     faker.Phonenumber(),
		Address: fmt.Sprintf("%d %s Street, %s, Tamil Nadu",
			rand.Intn(120)+1, faker.LastName(), demoCities[rand.Intn(len(demoCities))]),
		Password:   helpers.HashPassword("password"),
		Role:       models.RoleCustomer,
		IsApproved: true,
	}
}
