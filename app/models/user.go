package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles. Handlers and middleware switch
// on these constants; raw strings go through ParseRole at the boundary.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// ParseRole maps a raw string onto the role enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName  string `gorm:"size:100;not null"`
	LastName   string `gorm:"size:100"`
	Email      string `gorm:"size:100;not null;uniqueIndex"`
	Phone      string `gorm:"size:15"`
	Address    string `gorm:"type:text"`
	Password   string `gorm:"size:255"`
	Role       Role   `gorm:"size:20;default:'customer';not null"`
	IsApproved bool   `gorm:"default:false"`

	// OAuth identity, set when the account was created or linked via a
	// provider login. Password stays empty for provider-only accounts.
	Provider   string `gorm:"size:50"`
	ProviderID string `gorm:"size:100;index"`

	RememberTokenSelector *string `gorm:"size:64;uniqueIndex;null"`
	RememberTokenHash     string  `gorm:"size:255;null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

// BeforeSave keeps admins approved no matter how the record was mutated.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.Role == RoleAdmin {
		u.IsApproved = true
	}
	return
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SetFullName splits a single name field into first and last name the way
// the checkout form submits it.
func (u *User) SetFullName(full string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	u.FirstName = parts[0]
	if len(parts) > 1 {
		u.LastName = parts[1]
	} else {
		u.LastName = ""
	}
}
