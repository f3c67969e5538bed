package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User owns ledger entries. Balance is a cache refreshed after every recompute
// and is never used to decide anything.
type User struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Email              string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName        string          `gorm:"type:varchar(200)" json:"display_name"`
	Balance            decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"balance"`
	ProviderCustomerID *string         `gorm:"type:varchar(100);uniqueIndex" json:"provider_customer_id,omitempty"`
	LinkState          ConnectionState `gorm:"type:varchar(20);not null;default:'UNLINKED'" json:"link_state"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if u.LinkState == "" {
		u.LinkState = ConnectionStateUnlinked
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (u *User) HasProviderCustomer() bool {
	return u.ProviderCustomerID != nil && *u.ProviderCustomerID != ""
}

func (u *User) TableName() string {
	return "users"
}
