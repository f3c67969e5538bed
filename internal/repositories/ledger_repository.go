package repositories

import (
	"errors"
	"fmt"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const createBatchSize = 100

var (
	ErrEntryNotFound       = apperrors.New(apperrors.ErrNotFound, apperrors.LedgerEntryNotFound, "ledger entry not found")
	ErrDuplicateExternalID = apperrors.New(apperrors.ErrConflict, apperrors.LedgerDuplicateExternal, "ledger entry with this external id already exists")
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

func (r *ledgerRepository) Create(entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}

	if err := r.db.Create(entry).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateExternalID
		}
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}

// CreateBatch inserts all entries in one transaction; either every entry is
// written or none is.
func (r *ledgerRepository) CreateBatch(entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&entries, createBatchSize).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrDuplicateExternalID
			}
			return fmt.Errorf("failed to create ledger entries: %w", err)
		}
		return nil
	})
}

func (r *ledgerRepository) GetByID(ownerID, id uuid.UUID) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	return &entry, nil
}

func (r *ledgerRepository) Update(entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}

	result := r.db.Model(entry).
		Where("user_id = ?", entry.UserID).
		Select("amount", "direction", "category", "description", "occurred_at", "updated_at").
		Updates(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to update ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *ledgerRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.LedgerEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// List returns one page of entries, newest first, starting after cursor.
func (r *ledgerRepository) List(ownerID uuid.UUID, filters models.LedgerFilters, cursor *models.LedgerCursor, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry

	query := applyLedgerFilters(r.db.Where("user_id = ?", ownerID), filters)
	if cursor != nil {
		query = query.Where("(occurred_at < ?) OR (occurred_at = ? AND id < ?)",
			cursor.OccurredAt.UTC(), cursor.OccurredAt.UTC(), cursor.ID)
	}

	if err := query.Order("occurred_at DESC, id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, nil
}

// ListAll returns every matching entry in chronological order.
func (r *ledgerRepository) ListAll(ownerID uuid.UUID, filters models.LedgerFilters) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry

	query := applyLedgerFilters(r.db.Where("user_id = ?", ownerID), filters)
	if err := query.Order("occurred_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, nil
}

// SumBalance computes income minus expense over every entry the owner has.
func (r *ledgerRepository) SumBalance(ownerID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(CASE WHEN direction = ? THEN amount ELSE -amount END), 0) AS total", models.DirectionIncome).
		Where("user_id = ?", ownerID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger balance: %w", err)
	}

	return result.Total, nil
}

// ExistingExternalIDs reports which of the given external ids are already stored,
// in a single query.
func (r *ledgerRepository) ExistingExternalIDs(externalIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(externalIDs))
	if len(externalIDs) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.Model(&models.LedgerEntry{}).
		Where("external_id IN ?", externalIDs).
		Pluck("external_id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing external ids: %w", err)
	}

	for _, id := range found {
		existing[id] = true
	}

	return existing, nil
}

func (r *ledgerRepository) Totals(ownerID uuid.UUID, from, to time.Time) (income, expense decimal.Decimal, err error) {
	var rows []struct {
		Direction string
		Total     decimal.Decimal
	}

	if err := r.db.Model(&models.LedgerEntry{}).
		Select("direction, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", ownerID, from.UTC(), to.UTC()).
		Group("direction").
		Scan(&rows).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute ledger totals: %w", err)
	}

	income, expense = decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch row.Direction {
		case models.DirectionIncome:
			income = row.Total
		case models.DirectionExpense:
			expense = row.Total
		}
	}

	return income, expense, nil
}

// CategoryBreakdown sums expenses per category within [from, to).
func (r *ledgerRepository) CategoryBreakdown(ownerID uuid.UUID, from, to time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	if err := r.db.Model(&models.LedgerEntry{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND direction = ? AND occurred_at >= ? AND occurred_at < ?",
			ownerID, models.DirectionExpense, from.UTC(), to.UTC()).
		Group("category").
		Order("total DESC, category ASC").
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	return summaries, nil
}

// FindSameDayAmount returns entries on the same UTC day with the same amount and direction.
func (r *ledgerRepository) FindSameDayAmount(ownerID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, direction string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry

	dayStart := occurredAt.UTC().Truncate(24 * time.Hour)
	if err := r.db.
		Where("user_id = ? AND direction = ? AND amount = ? AND occurred_at >= ? AND occurred_at < ?",
			ownerID, direction, amount, dayStart, dayStart.Add(24*time.Hour)).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find matching ledger entries: %w", err)
	}

	return entries, nil
}

func applyLedgerFilters(query *gorm.DB, filters models.LedgerFilters) *gorm.DB {
	if filters.Direction != "" {
		query = query.Where("direction = ?", filters.Direction)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.From != nil {
		query = query.Where("occurred_at >= ?", filters.From.UTC())
	}
	if filters.To != nil {
		query = query.Where("occurred_at < ?", filters.To.UTC())
	}
	return query
}
