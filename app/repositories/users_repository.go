package repositories

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mannancrackers/shop/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepositoryImpl interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, userID string, role models.Role) error
	SetApproval(ctx context.Context, userID string, approved bool) error
	UpdateRememberToken(ctx context.Context, userID string, selector string, verifierHash string) error
	FindByRememberToken(ctx context.Context, tokenFromCookie string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	// OAuth-only accounts carry no password; hashing an empty string would
	// make "" a valid login credential.
	if user.Password != "" {
		hashPass, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password for user %s: %v", user.Email, err)
			return err
		}
		user.Password = string(hashPass)
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	user.RememberTokenSelector = nil
	user.RememberTokenHash = ""

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByProvider(ctx context.Context, provider, providerID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_id = ?", provider, providerID).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	updates := map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	}
	// Updates with a map bypasses the BeforeSave hook, so the admin
	// auto-approval rule has to be applied here as well.
	if role == models.RoleAdmin {
		updates["is_approved"] = true
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update role for user %s: %w", userID, result.Error)
	}
	return nil
}

func (r *userRepository) SetApproval(ctx context.Context, userID string, approved bool) error {
	updates := map[string]interface{}{
		"is_approved": approved,
		"updated_at":  time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update approval for user %s: %w", userID, result.Error)
	}
	return nil
}

func (r *userRepository) UpdateRememberToken(ctx context.Context, userID string, selector string, verifierHash string) error {
	updates := map[string]interface{}{
		"remember_token_hash": verifierHash,
		"updated_at":          time.Now(),
	}
	if selector == "" {
		updates["remember_token_selector"] = nil
	} else {
		updates["remember_token_selector"] = &selector
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update remember token for user %s: %w", userID, result.Error)
	}
	return nil
}

func (r *userRepository) FindByRememberToken(ctx context.Context, tokenFromCookie string) (*models.User, error) {
	parts := strings.SplitN(tokenFromCookie, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid remember token format")
	}

	selector := parts[0]
	verifierRaw := parts[1]

	var user models.User

	err := r.db.WithContext(ctx).Where("remember_token_selector = ?", selector).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	if user.RememberTokenHash == "" || bcrypt.CompareHashAndPassword([]byte(user.RememberTokenHash), []byte(verifierRaw)) != nil {
		return nil, nil
	}

	return &user, nil
}
