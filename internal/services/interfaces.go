package services

import (
	"context"
	"io"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface owns ledger mutation and the ground-truth balance.
type LedgerServiceInterface interface {
	EnsureUser(email, displayName string) (*models.User, error)
	Append(ctx context.Context, ownerID uuid.UUID, draft *models.LedgerEntry) (*models.LedgerEntry, error)
	AppendBatch(ctx context.Context, ownerID uuid.UUID, drafts []models.LedgerEntry) ([]models.LedgerEntry, error)
	Update(ctx context.Context, ownerID, entryID uuid.UUID, patch models.LedgerEntryPatch) (*models.LedgerEntry, error)
	Delete(ctx context.Context, ownerID, entryID uuid.UUID) error
	Get(ownerID, entryID uuid.UUID) (*models.LedgerEntry, error)
	List(ownerID uuid.UUID, filters models.LedgerFilters, cursor string, limit int) ([]models.LedgerEntry, string, error)
	Balance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// CategorizerInterface labels free text with a spending category. Categorize
// never fails; it degrades to Uncategorized.
type CategorizerInterface interface {
	Categorize(ctx context.Context, text string) string
	CategorizeDetailed(ctx context.Context, text string) *models.CategorizationResult
	SeedDefaults() (int, error)
	ListRules() ([]models.CategoryRule, error)
	AddRule(keyword, category string) (*models.CategoryRule, error)
	DeleteRule(ruleID uuid.UUID) error
}

// AIClassifierInterface is the remote fallback tier of the categorizer.
type AIClassifierInterface interface {
	Classify(ctx context.Context, text string) (*models.AIClassification, error)
	Name() string
}

// ProviderClientInterface is the bank-aggregation API used by the sync reconciler.
type ProviderClientInterface interface {
	CreateCustomer(ctx context.Context, identifier string) (string, error)
	CreateConnectSession(ctx context.Context, customerID string) (*dto.SaltEdgeConnectSession, error)
	ListTransactions(ctx context.Context, connectionID, fromID string) ([]dto.SaltEdgeTransaction, string, error)
	ListConnections(ctx context.Context, customerID string) ([]dto.SaltEdgeConnection, error)
}

// SyncServiceInterface reconciles the provider feed into the ledger.
type SyncServiceInterface interface {
	CreateSession(ctx context.Context, ownerID uuid.UUID) (*dto.ConnectSessionResponse, error)
	HandleCallback(ctx context.Context, payload dto.SaltEdgeCallback) error
	FetchTransactions(ctx context.Context, connectionID string, ownerID uuid.UUID) ([]models.LedgerEntry, error)
	ImportAllConnections(ctx context.Context, ownerID uuid.UUID) (*dto.ImportAllResponse, error)
	Status(ownerID uuid.UUID) (*dto.SyncStatusResponse, error)
}

// ImportServiceInterface normalizes tabular files into ledger entries.
type ImportServiceInterface interface {
	ImportFile(ctx context.Context, ownerID uuid.UUID, filename string, r io.ReadSeeker, opts dto.ImportOptions) (*dto.ImportResult, error)
	ImportCSV(ctx context.Context, ownerID uuid.UUID, r io.Reader, opts dto.ImportOptions) (*dto.ImportResult, error)
	ImportXLS(ctx context.Context, ownerID uuid.UUID, r io.ReadSeeker, opts dto.ImportOptions) (*dto.ImportResult, error)
	ImportRows(ctx context.Context, ownerID uuid.UUID, rows []dto.ImportRow, opts dto.ImportOptions) (*dto.ImportResult, error)
	SampleCSV() []byte
}

type ReportServiceInterface interface {
	MonthlySummary(ownerID uuid.UUID, year, month int) (*models.MonthlySummary, error)
	ExportCSV(ownerID uuid.UUID, filters models.LedgerFilters, w io.Writer) error
	Insights(ownerID uuid.UUID) ([]models.SpendingInsight, error)
}

// NotifierInterface delivers best-effort user notifications.
type NotifierInterface interface {
	Notify(ctx context.Context, ownerID uuid.UUID, title, message string)
}

type NotificationServiceInterface interface {
	Notify(ctx context.Context, ownerID uuid.UUID, title, message string)
	List(ownerID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(ownerID, notificationID uuid.UUID) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogLedgerMutation(ctx context.Context, ownerID, entryID uuid.UUID, operation string)
	LogBalanceRecomputed(ctx context.Context, ownerID uuid.UUID, oldBalance, newBalance string)
	LogRuleLearned(ctx context.Context, keyword, category string, confidence float64)
	LogSyncStarted(ctx context.Context, connectionID string, ownerID uuid.UUID)
	LogSyncCompleted(ctx context.Context, connectionID string, imported, skipped int, durationMs int64)
	LogSyncFailed(ctx context.Context, connectionID string, errorMsg string, durationMs int64)
	LogConnectionStateChange(ctx context.Context, connectionID string, oldState, newState models.ConnectionState)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogImportCompleted(ctx context.Context, ownerID uuid.UUID, imported, skipped, duplicates int)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
