package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultLedgerPageSize = 50
	MaxLedgerPageSize     = 200

	highExpenseTitle = "High Expense Alert"
)

var ErrInvalidLedgerCursor = apperrors.New(apperrors.ErrValidation, apperrors.LedgerInvalidCursor, "invalid pagination cursor")

type ledgerService struct {
	userRepo    repositories.UserRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	categorizer CategorizerInterface
	notifier    NotifierInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	config      config.LedgerConfig
	logger      *slog.Logger
}

// NewLedgerService creates the ledger service. The balance it reports is always
// summed from the stored entries; User.Balance is only refreshed as a cache.
func NewLedgerService(
	userRepo repositories.UserRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	categorizer CategorizerInterface,
	notifier NotifierInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.LedgerConfig,
	logger *slog.Logger,
) LedgerServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerService{
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		categorizer: categorizer,
		notifier:    notifier,
		auditLogger: auditLogger,
		metrics:     metrics,
		config:      cfg,
		logger:      logger,
	}
}

// EnsureUser returns the user with the given email, creating it when absent.
func (s *ledgerService) EnsureUser(email, displayName string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	user = &models.User{Email: email, DisplayName: displayName}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return s.userRepo.GetByEmail(email)
		}
		return nil, apperrors.Validationf(apperrors.ValidationInvalidFormat, "cannot create user: %v", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *ledgerService) Append(ctx context.Context, ownerID uuid.UUID, draft *models.LedgerEntry) (*models.LedgerEntry, error) {
	if draft == nil {
		return nil, apperrors.Validationf(apperrors.ValidationRequiredField, "ledger entry is required")
	}

	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	entry := *draft
	if err := s.prepare(ctx, ownerID, &entry); err != nil {
		return nil, err
	}

	if entry.IsExpense() {
		balance, err := s.ledgerRepo.SumBalance(ownerID)
		if err != nil {
			return nil, err
		}
		if balance.Sub(entry.Amount).IsNegative() {
			s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "append", "status": "insufficient_funds"})
			return nil, apperrors.New(apperrors.ErrInsufficientFunds, apperrors.LedgerInsufficientFunds,
				fmt.Sprintf("expense of %s exceeds balance of %s", entry.Amount.StringFixed(2), balance.StringFixed(2)))
		}
	}

	if err := s.ledgerRepo.Create(&entry); err != nil {
		s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "append", "status": "failed"})
		return nil, err
	}

	s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "append", "status": "success"})
	s.auditLogger.LogLedgerMutation(ctx, ownerID, entry.ID, "append")
	s.refreshBalance(ctx, user)

	if entry.IsExpense() && entry.Amount.GreaterThan(s.config.HighExpenseThreshold) {
		s.notifier.Notify(ctx, ownerID, highExpenseTitle,
			fmt.Sprintf("You just spent %s on %s", entry.Amount.StringFixed(2), entry.Category))
	}

	return &entry, nil
}

// AppendBatch persists drafts in one write. Imported and synced history is
// taken as-is, so no funds check is applied.
func (s *ledgerService) AppendBatch(ctx context.Context, ownerID uuid.UUID, drafts []models.LedgerEntry) ([]models.LedgerEntry, error) {
	if len(drafts) == 0 {
		return []models.LedgerEntry{}, nil
	}

	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LedgerEntry, len(drafts))
	copy(entries, drafts)
	for i := range entries {
		if err := s.prepare(ctx, ownerID, &entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}

	if err := s.ledgerRepo.CreateBatch(entries); err != nil {
		s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "append_batch", "status": "failed"})
		return nil, err
	}

	s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "append_batch", "status": "success"})
	for _, entry := range entries {
		s.auditLogger.LogLedgerMutation(ctx, ownerID, entry.ID, "append")
	}
	s.refreshBalance(ctx, user)

	return entries, nil
}

func (s *ledgerService) Update(ctx context.Context, ownerID, entryID uuid.UUID, patch models.LedgerEntryPatch) (*models.LedgerEntry, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledgerRepo.GetByID(ownerID, entryID)
	if err != nil {
		return nil, err
	}

	if err := validatePatch(&patch); err != nil {
		return nil, err
	}
	patch.Apply(entry)

	if err := s.ledgerRepo.Update(entry); err != nil {
		s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "update", "status": "failed"})
		return nil, err
	}

	s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "update", "status": "success"})
	s.auditLogger.LogLedgerMutation(ctx, ownerID, entry.ID, "update")
	s.refreshBalance(ctx, user)

	return entry, nil
}

func (s *ledgerService) Delete(ctx context.Context, ownerID, entryID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return err
	}

	if err := s.ledgerRepo.Delete(ownerID, entryID); err != nil {
		return err
	}

	s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"operation": "delete", "status": "success"})
	s.auditLogger.LogLedgerMutation(ctx, ownerID, entryID, "delete")
	s.refreshBalance(ctx, user)

	return nil
}

func (s *ledgerService) Get(ownerID, entryID uuid.UUID) (*models.LedgerEntry, error) {
	return s.ledgerRepo.GetByID(ownerID, entryID)
}

// List returns one page of entries and the cursor for the next page, which is
// empty on the last page.
func (s *ledgerService) List(ownerID uuid.UUID, filters models.LedgerFilters, cursor string, limit int) ([]models.LedgerEntry, string, error) {
	after, err := models.DecodeLedgerCursor(cursor)
	if err != nil {
		return nil, "", ErrInvalidLedgerCursor
	}

	if limit <= 0 {
		limit = DefaultLedgerPageSize
	}
	if limit > MaxLedgerPageSize {
		limit = MaxLedgerPageSize
	}

	entries, err := s.ledgerRepo.List(ownerID, filters, after, limit+1)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(entries) > limit {
		entries = entries[:limit]
		next = models.CursorAfter(entries[limit-1]).Encode()
	}

	return entries, next, nil
}

// Balance sums the owner's ledger and refreshes the cached copy.
func (s *ledgerService) Balance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := s.ledgerRepo.SumBalance(ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	s.storeBalance(ctx, user, balance)
	return balance, nil
}

// refreshBalance runs after a committed mutation. A failure leaves the cache
// stale until the next Balance call, so it is logged rather than returned.
func (s *ledgerService) refreshBalance(ctx context.Context, user *models.User) {
	balance, err := s.ledgerRepo.SumBalance(user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to recompute balance", "user_id", user.ID, "error", err)
		return
	}
	s.storeBalance(ctx, user, balance)
}

func (s *ledgerService) storeBalance(ctx context.Context, user *models.User, balance decimal.Decimal) {
	if !user.Balance.Equal(balance) {
		s.metrics.IncrementCounter(MetricBalanceDrift, nil)
	}
	s.auditLogger.LogBalanceRecomputed(ctx, user.ID, user.Balance.String(), balance.String())

	if err := s.userRepo.UpdateBalance(user.ID, balance); err != nil {
		s.logger.ErrorContext(ctx, "failed to cache balance", "user_id", user.ID, "error", err)
		return
	}
	user.Balance = balance
}

// prepare fills defaults on a draft and validates it.
func (s *ledgerService) prepare(ctx context.Context, ownerID uuid.UUID, entry *models.LedgerEntry) error {
	entry.UserID = ownerID

	if entry.Amount.IsNegative() {
		return apperrors.Validationf(apperrors.LedgerInvalidAmount, "amount must not be negative")
	}
	if !models.FitsAmountScale(entry.Amount) {
		return apperrors.Validationf(apperrors.LedgerInvalidAmount, "amount %s has more than %d decimal places", entry.Amount, models.AmountScale)
	}

	direction := models.NormalizeDirection(entry.Direction)
	if direction == "" {
		return apperrors.Validationf(apperrors.LedgerInvalidDirection, "direction must be INCOME or EXPENSE, got %q", entry.Direction)
	}
	entry.Direction = direction

	if strings.TrimSpace(entry.Currency) == "" {
		entry.Currency = s.config.DefaultCurrency
	}
	currency := models.NormalizeCurrency(entry.Currency)
	if currency == "" {
		return apperrors.Validationf(apperrors.LedgerInvalidCurrency, "currency must be a three-letter code, got %q", entry.Currency)
	}
	entry.Currency = currency

	switch {
	case entry.Category != "":
		category := models.CanonicalCategory(entry.Category)
		if category == "" {
			return apperrors.Validationf(apperrors.RuleInvalidCategory, "unknown category %q", entry.Category)
		}
		entry.Category = category
	case strings.TrimSpace(entry.Description) != "" && s.categorizer != nil:
		entry.Category = s.categorizer.Categorize(ctx, entry.Description)
	default:
		entry.Category = models.CategoryUncategorized
	}

	if !entry.OccurredAt.IsZero() {
		entry.OccurredAt = entry.OccurredAt.UTC()
	}

	return nil
}

func validatePatch(patch *models.LedgerEntryPatch) error {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return apperrors.Validationf(apperrors.LedgerInvalidAmount, "amount must not be negative")
	}
	if patch.Amount != nil && !models.FitsAmountScale(*patch.Amount) {
		return apperrors.Validationf(apperrors.LedgerInvalidAmount, "amount %s has more than %d decimal places", *patch.Amount, models.AmountScale)
	}
	if patch.Direction != nil {
		direction := models.NormalizeDirection(*patch.Direction)
		if direction == "" {
			return apperrors.Validationf(apperrors.LedgerInvalidDirection, "direction must be INCOME or EXPENSE, got %q", *patch.Direction)
		}
		patch.Direction = &direction
	}
	if patch.Category != nil {
		category := models.CanonicalCategory(*patch.Category)
		if category == "" {
			return apperrors.Validationf(apperrors.RuleInvalidCategory, "unknown category %q", *patch.Category)
		}
		patch.Category = &category
	}
	return nil
}
