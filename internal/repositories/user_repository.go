package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = apperrors.New(apperrors.ErrNotFound, apperrors.UserNotFound, "user not found")
	ErrUserAlreadyExists = apperrors.New(apperrors.ErrConflict, apperrors.ValidationGeneral, "user already exists")
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user in the database
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	if err := r.db.Where("id = ?", id).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByProviderCustomerID(customerID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("provider_customer_id = ?", customerID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by provider customer ID: %w", err)
	}

	return &user, nil
}

// UpdateBalance overwrites the cached balance with a freshly recomputed value.
func (r *UserRepository) UpdateBalance(userID uuid.UUID, balance decimal.Decimal) error {
	return r.updateColumns(userID, map[string]interface{}{"balance": balance}, "balance")
}

func (r *UserRepository) SetProviderCustomerID(userID uuid.UUID, customerID string) error {
	err := r.updateColumns(userID, map[string]interface{}{"provider_customer_id": customerID}, "provider customer ID")
	if err != nil && isDuplicateKeyError(err) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) SetLinkState(userID uuid.UUID, state models.ConnectionState) error {
	return r.updateColumns(userID, map[string]interface{}{"link_state": state}, "link state")
}

func (r *UserRepository) updateColumns(userID uuid.UUID, fields map[string]interface{}, what string) error {
	fields["updated_at"] = time.Now().UTC()

	result := r.db.Model(&models.User{}).Where("id = ?", userID).UpdateColumns(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
