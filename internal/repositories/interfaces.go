package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByProviderCustomerID(customerID string) (*models.User, error)
	UpdateBalance(userID uuid.UUID, balance decimal.Decimal) error
	SetProviderCustomerID(userID uuid.UUID, customerID string) error
	SetLinkState(userID uuid.UUID, state models.ConnectionState) error
}

// LedgerRepositoryInterface defines the contract for ledger entry storage.
// Every read is scoped to an owner.
type LedgerRepositoryInterface interface {
	Create(entry *models.LedgerEntry) error
	CreateBatch(entries []models.LedgerEntry) error
	GetByID(ownerID, id uuid.UUID) (*models.LedgerEntry, error)
	Update(entry *models.LedgerEntry) error
	Delete(ownerID, id uuid.UUID) error
	List(ownerID uuid.UUID, filters models.LedgerFilters, cursor *models.LedgerCursor, limit int) ([]models.LedgerEntry, error)
	ListAll(ownerID uuid.UUID, filters models.LedgerFilters) ([]models.LedgerEntry, error)
	SumBalance(ownerID uuid.UUID) (decimal.Decimal, error)
	ExistingExternalIDs(externalIDs []string) (map[string]bool, error)
	Totals(ownerID uuid.UUID, from, to time.Time) (income, expense decimal.Decimal, err error)
	CategoryBreakdown(ownerID uuid.UUID, from, to time.Time) ([]models.CategorySummary, error)
	FindSameDayAmount(ownerID uuid.UUID, occurredAt time.Time, amount decimal.Decimal, direction string) ([]models.LedgerEntry, error)
}

// CategoryRuleRepositoryInterface defines the contract for the global keyword dictionary
type CategoryRuleRepositoryInterface interface {
	All() ([]models.CategoryRule, error)
	GetByID(id uuid.UUID) (*models.CategoryRule, error)
	ExistsByKeyword(keyword string) (bool, error)
	Create(rule *models.CategoryRule) error
	Delete(id uuid.UUID) error
}

// ConnectionRepositoryInterface defines the contract for provider connection records
type ConnectionRepositoryInterface interface {
	Upsert(connection *models.ProviderConnection) error
	GetByExternalID(externalID string) (*models.ProviderConnection, error)
	ListByUser(userID uuid.UUID) ([]models.ProviderConnection, error)
	Update(connection *models.ProviderConnection) error
}

// NotificationRepositoryInterface defines the contract for notification storage
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ListByUser(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(userID, id uuid.UUID) error
}
