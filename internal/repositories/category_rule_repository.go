package repositories

import (
	"errors"
	"fmt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRuleNotFound      = apperrors.New(apperrors.ErrNotFound, apperrors.RuleNotFound, "category rule not found")
	ErrRuleKeywordExists = apperrors.New(apperrors.ErrConflict, apperrors.RuleKeywordExists, "a rule for this keyword already exists")
)

type categoryRuleRepository struct {
	db *gorm.DB
}

// NewCategoryRuleRepository creates a new category rule repository
func NewCategoryRuleRepository(db *gorm.DB) CategoryRuleRepositoryInterface {
	return &categoryRuleRepository{
		db: db,
	}
}

// All returns every rule ordered by keyword.
func (r *categoryRuleRepository) All() ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	if err := r.db.Order("keyword ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}
	return rules, nil
}

func (r *categoryRuleRepository) GetByID(id uuid.UUID) (*models.CategoryRule, error) {
	var rule models.CategoryRule
	if err := r.db.Where("id = ?", id).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get category rule: %w", err)
	}
	return &rule, nil
}

func (r *categoryRuleRepository) ExistsByKeyword(keyword string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CategoryRule{}).
		Where("keyword = ?", models.NormalizeKeyword(keyword)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category rule: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRuleRepository) Create(rule *models.CategoryRule) error {
	if rule == nil {
		return errors.New("category rule cannot be nil")
	}

	if err := r.db.Create(rule).Error; err != nil {
		if errors.Is(err, models.ErrEmptyKeyword) {
			return apperrors.Validationf(apperrors.ValidationRequiredField, "keyword is required")
		}
		if isDuplicateKeyError(err) {
			return ErrRuleKeywordExists
		}
		return fmt.Errorf("failed to create category rule: %w", err)
	}

	return nil
}

func (r *categoryRuleRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.CategoryRule{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
