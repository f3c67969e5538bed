package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DirectionIncome  = "INCOME"
	DirectionExpense = "EXPENSE"

	EntrySourceManual = "MANUAL"
	EntrySourceImport = "IMPORT"
	EntrySourceSync   = "SYNC"

	// AmountScale is the number of fractional digits the amount column keeps.
	AmountScale = 4
)

var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidDirection = errors.New("direction must be INCOME or EXPENSE")
	ErrMissingOwner     = errors.New("owner is required")
	ErrInvalidCurrency  = errors.New("currency must be a three-letter code")
	ErrAmountScale      = fmt.Errorf("amount must have at most %d decimal places", AmountScale)
)

// LedgerEntry is one income or expense record. Amount is an unsigned magnitude;
// the sign lives in Direction.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Direction   string          `gorm:"type:varchar(10);not null" json:"direction"`
	Category    string          `gorm:"type:varchar(50);not null;default:'Uncategorized'" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	ExternalID  *string         `gorm:"type:varchar(100);uniqueIndex" json:"external_id,omitempty"`
	Source      string          `gorm:"type:varchar(10);not null;default:'MANUAL'" json:"source"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}
	e.OccurredAt = e.OccurredAt.UTC()
	if e.Source == "" {
		e.Source = EntrySourceManual
	}
	if e.Category == "" {
		e.Category = CategoryUncategorized
	}

	return e.Validate()
}

func (e *LedgerEntry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().UTC()
	e.OccurredAt = e.OccurredAt.UTC()
	return e.Validate()
}

func (e *LedgerEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrMissingOwner
	}
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !FitsAmountScale(e.Amount) {
		return ErrAmountScale
	}
	if !IsValidDirection(e.Direction) {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, e.Direction)
	}
	return nil
}

// SignedAmount returns the amount as it contributes to the owner's balance.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Direction == DirectionExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}

func (e *LedgerEntry) IsExpense() bool {
	return e.Direction == DirectionExpense
}

func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

func IsValidDirection(direction string) bool {
	return direction == DirectionIncome || direction == DirectionExpense
}

// NormalizeDirection upper-cases and trims a direction, returning "" when it is not recognised.
func NormalizeDirection(direction string) string {
	d := strings.ToUpper(strings.TrimSpace(direction))
	if IsValidDirection(d) {
		return d
	}
	return ""
}

// NormalizeCurrency upper-cases and trims an ISO 4217 style code, returning ""
// when the result is not exactly three ASCII letters.
func NormalizeCurrency(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if len(c) != 3 {
		return ""
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return ""
		}
	}
	return c
}

// FitsAmountScale reports whether amount can be stored without rounding.
func FitsAmountScale(amount decimal.Decimal) bool {
	return amount.Exponent() >= -AmountScale || amount.Equal(amount.Truncate(AmountScale))
}

// DirectionFromSigned infers a direction from a signed amount: positive is income,
// zero and negative are expenses.
func DirectionFromSigned(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return DirectionIncome
	}
	return DirectionExpense
}

// LedgerEntryPatch holds the mutable fields of an entry. Nil fields are left untouched.
type LedgerEntryPatch struct {
	Amount      *decimal.Decimal
	Direction   *string
	Category    *string
	Description *string
	OccurredAt  *time.Time
}

// Apply copies the non-nil patch fields onto the entry.
func (p LedgerEntryPatch) Apply(e *LedgerEntry) {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Direction != nil {
		e.Direction = *p.Direction
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.OccurredAt != nil {
		e.OccurredAt = *p.OccurredAt
	}
}

// LedgerFilters narrows a ledger listing.
type LedgerFilters struct {
	Direction string
	Category  string
	From      *time.Time
	To        *time.Time
}
