package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RuleSourceSeed    = "SEED"
	RuleSourceLearned = "LEARNED"
	RuleSourceManual  = "MANUAL"
)

var ErrEmptyKeyword = errors.New("keyword is required")

// CategoryRule maps a lowercase keyword to a category. Rules form one global
// dictionary shared by every user.
type CategoryRule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Keyword   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"keyword"`
	Category  string    `gorm:"type:varchar(50);not null" json:"category"`
	Source    string    `gorm:"type:varchar(10);not null" json:"source"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.Keyword = NormalizeKeyword(r.Keyword)
	if r.Keyword == "" {
		return ErrEmptyKeyword
	}
	return nil
}

func (r *CategoryRule) TableName() string {
	return "category_rules"
}

// NormalizeKeyword is the canonical form used for storage and lookup.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
