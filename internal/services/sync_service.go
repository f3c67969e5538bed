package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const (
	callbackStageFinish = "finish"

	// A connection left in SYNCING longer than this is treated as abandoned.
	staleSyncAfter = 15 * time.Minute

	newTransactionsTitle = "New transactions"
)

type syncService struct {
	userRepo       repositories.UserRepositoryInterface
	connectionRepo repositories.ConnectionRepositoryInterface
	ledgerRepo     repositories.LedgerRepositoryInterface
	ledger         LedgerServiceInterface
	categorizer    CategorizerInterface
	provider       ProviderClientInterface
	notifier       NotifierInterface
	auditLogger    AuditLoggerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewSyncService creates the reconciler that merges the provider feed into the
// ledger. Records are deduplicated by provider id, so every fetch is safe to repeat.
func NewSyncService(
	userRepo repositories.UserRepositoryInterface,
	connectionRepo repositories.ConnectionRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	ledger LedgerServiceInterface,
	categorizer CategorizerInterface,
	provider ProviderClientInterface,
	notifier NotifierInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SyncServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &syncService{
		userRepo:       userRepo,
		connectionRepo: connectionRepo,
		ledgerRepo:     ledgerRepo,
		ledger:         ledger,
		categorizer:    categorizer,
		provider:       provider,
		notifier:       notifier,
		auditLogger:    auditLogger,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateSession provisions the provider customer on first use and returns a
// connect URL for the owner.
func (s *syncService) CreateSession(ctx context.Context, ownerID uuid.UUID) (*dto.ConnectSessionResponse, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	if !user.HasProviderCustomer() {
		customerID, err := s.provider.CreateCustomer(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.SetProviderCustomerID(user.ID, customerID); err != nil {
			return nil, err
		}
		user.ProviderCustomerID = &customerID
		s.logger.InfoContext(ctx, "provider customer created", "user_id", user.ID, "customer_id", customerID)
	}

	session, err := s.provider.CreateConnectSession(ctx, *user.ProviderCustomerID)
	if err != nil {
		return nil, err
	}

	s.advanceLinkState(ctx, user, models.ConnectionStateSessionCreated)

	return &dto.ConnectSessionResponse{
		ConnectURL: session.ConnectURL,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// HandleCallback records the connection announced by a finished connect flow
// and imports its transactions. Other stages are acknowledged and ignored, as
// is a replay that arrives while the connection is still syncing.
func (s *syncService) HandleCallback(ctx context.Context, payload dto.SaltEdgeCallback) error {
	data := payload.Data
	if strings.TrimSpace(data.ConnectionID) == "" || strings.TrimSpace(data.CustomerID) == "" {
		return apperrors.Validationf(apperrors.SyncInvalidCallback, "callback requires connection_id and customer_id")
	}

	if !strings.EqualFold(data.Stage, callbackStageFinish) {
		s.logger.InfoContext(ctx, "ignoring provider callback stage",
			"stage", data.Stage,
			"connection_id", data.ConnectionID,
		)
		return nil
	}

	user, err := s.userRepo.GetByProviderCustomerID(data.CustomerID)
	if err != nil {
		return err
	}

	connection := &models.ProviderConnection{
		UserID:     user.ID,
		ExternalID: data.ConnectionID,
		State:      models.ConnectionStateConnected,
	}
	if err := s.connectionRepo.Upsert(connection); err != nil {
		return err
	}
	if connection.UserID != user.ID {
		return repositories.ErrConnectionNotFound
	}

	s.advanceLinkState(ctx, user, models.ConnectionStateConnected)

	if connection.State == models.ConnectionStateSyncing && !s.isAbandonedSync(connection, models.ConnectionStateSyncing) {
		s.logger.InfoContext(ctx, "callback replayed while sync in progress", "connection_id", connection.ExternalID)
		return nil
	}

	_, err = s.FetchTransactions(ctx, connection.ExternalID, user.ID)
	return err
}

// FetchTransactions pages through the connection's feed and appends every
// record not yet in the ledger. Pages committed before a provider failure stay
// committed; a retry resumes without duplicates.
func (s *syncService) FetchTransactions(ctx context.Context, connectionID string, ownerID uuid.UUID) ([]models.LedgerEntry, error) {
	connection, err := s.connectionRepo.GetByExternalID(connectionID)
	if err != nil {
		return nil, err
	}
	if connection.UserID != ownerID {
		return nil, repositories.ErrConnectionNotFound
	}

	if err := s.transition(ctx, connection, models.ConnectionStateSyncing); err != nil {
		return nil, err
	}

	start := time.Now()
	s.auditLogger.LogSyncStarted(ctx, connectionID, ownerID)

	created, skipped, err := s.pull(ctx, connectionID, ownerID)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(MetricSyncDuration, duration)
	s.metrics.RecordGauge(MetricSyncEntries, float64(len(created)), map[string]string{"outcome": "imported"})
	s.metrics.RecordGauge(MetricSyncEntries, float64(skipped), map[string]string{"outcome": "skipped"})

	if err != nil {
		s.metrics.IncrementCounter(MetricSyncRun, map[string]string{"status": "failed"})
		s.auditLogger.LogSyncFailed(ctx, connectionID, err.Error(), duration.Milliseconds())

		connection.LastError = err.Error()
		connection.LastImported = len(created)
		if terr := s.transition(ctx, connection, models.ConnectionStateError); terr != nil {
			s.logger.ErrorContext(ctx, "failed to record sync failure", "connection_id", connectionID, "error", terr)
		}
		return nil, err
	}

	now := s.now().UTC()
	connection.LastSyncedAt = &now
	connection.LastError = ""
	connection.LastImported = len(created)
	if err := s.transition(ctx, connection, models.ConnectionStateIdle); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricSyncRun, map[string]string{"status": "success"})
	s.auditLogger.LogSyncCompleted(ctx, connectionID, len(created), skipped, duration.Milliseconds())

	if len(created) > 0 {
		bank := connection.ProviderName
		if bank == "" {
			bank = "your bank"
		}
		s.notifier.Notify(ctx, ownerID, newTransactionsTitle,
			fmt.Sprintf("%d new transactions imported from %s", len(created), bank))
	}

	return created, nil
}

// pull runs the page loop. It returns the entries created so far even when it fails.
func (s *syncService) pull(ctx context.Context, connectionID string, ownerID uuid.UUID) ([]models.LedgerEntry, int, error) {
	created := []models.LedgerEntry{}
	skipped := 0
	cursor := ""

	for {
		page, next, err := s.provider.ListTransactions(ctx, connectionID, cursor)
		if err != nil {
			return created, skipped, err
		}

		ids := make([]string, 0, len(page))
		for _, tx := range page {
			if tx.ID != "" {
				ids = append(ids, tx.ID)
			}
		}

		existing, err := s.ledgerRepo.ExistingExternalIDs(ids)
		if err != nil {
			return created, skipped, err
		}

		drafts := make([]models.LedgerEntry, 0, len(page))
		for _, tx := range page {
			if tx.ID == "" || tx.Duplicated || existing[tx.ID] {
				skipped++
				continue
			}
			draft, err := s.mapTransaction(ctx, tx)
			if err != nil {
				s.logger.WarnContext(ctx, "provider transaction rejected", "transaction_id", tx.ID, "error", err)
				skipped++
				continue
			}
			existing[tx.ID] = true
			drafts = append(drafts, draft)
		}

		if len(drafts) > 0 {
			entries, err := s.ledger.AppendBatch(ctx, ownerID, drafts)
			if err != nil {
				return created, skipped, err
			}
			created = append(created, entries...)
		}

		s.logger.DebugContext(ctx, "sync page processed",
			"connection_id", connectionID,
			"records", len(page),
			"created", len(drafts),
		)

		if next == "" {
			return created, skipped, nil
		}
		if next == cursor {
			return created, skipped, &apperrors.ExternalServiceError{
				Service:   saltEdgeService,
				Operation: "list_transactions",
				Err:       fmt.Errorf("cursor %q did not advance", cursor),
			}
		}
		cursor = next
	}
}

// mapTransaction converts a provider record into a ledger draft. A positive
// amount is income; zero and negative amounts are expenses. Records whose
// currency or amount the ledger cannot store are rejected.
func (s *syncService) mapTransaction(ctx context.Context, tx dto.SaltEdgeTransaction) (models.LedgerEntry, error) {
	currency := models.NormalizeCurrency(tx.CurrencyCode)
	if currency == "" {
		return models.LedgerEntry{}, fmt.Errorf("%w: %q", models.ErrInvalidCurrency, tx.CurrencyCode)
	}
	if !models.FitsAmountScale(tx.Amount) {
		return models.LedgerEntry{}, fmt.Errorf("%w: %s", models.ErrAmountScale, tx.Amount)
	}

	occurredAt, err := time.ParseInLocation("2006-01-02", tx.MadeOn, time.UTC)
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable made_on, using current time", "transaction_id", tx.ID, "made_on", tx.MadeOn)
		occurredAt = s.now().UTC()
	}

	description := strings.TrimSpace(tx.Description)
	if description == "" {
		description = strings.TrimSpace(tx.Extra.Payee)
	}

	category := models.CategoryUncategorized
	if description != "" {
		category = s.categorizer.Categorize(ctx, description)
	}
	if category == models.CategoryUncategorized {
		if fromProvider := models.CanonicalCategory(tx.Category); fromProvider != "" {
			category = fromProvider
		}
	}

	externalID := tx.ID
	return models.LedgerEntry{
		Amount:      tx.Amount.Abs(),
		Direction:   models.DirectionFromSigned(tx.Amount),
		Category:    category,
		Description: description,
		Currency:    currency,
		OccurredAt:  occurredAt,
		ExternalID:  &externalID,
		Source:      models.EntrySourceSync,
	}, nil
}

// ImportAllConnections syncs every connection the provider knows for the
// owner. One connection failing does not stop the others.
func (s *syncService) ImportAllConnections(ctx context.Context, ownerID uuid.UUID) (*dto.ImportAllResponse, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	response := &dto.ImportAllResponse{Connections: []dto.ConnectionSyncResult{}}
	if !user.HasProviderCustomer() {
		return response, nil
	}

	remote, err := s.provider.ListConnections(ctx, *user.ProviderCustomerID)
	if err != nil {
		return nil, err
	}

	for _, rc := range remote {
		result := dto.ConnectionSyncResult{ConnectionID: rc.ID}

		entries, err := s.syncRemoteConnection(ctx, user, rc)
		if err != nil {
			result.Error = err.Error()
			s.logger.WarnContext(ctx, "connection sync failed",
				"user_id", ownerID,
				"connection_id", rc.ID,
				"error", err,
			)
		}
		result.Imported = len(entries)
		response.Imported += len(entries)
		response.Connections = append(response.Connections, result)
	}

	return response, nil
}

func (s *syncService) syncRemoteConnection(ctx context.Context, user *models.User, rc dto.SaltEdgeConnection) ([]models.LedgerEntry, error) {
	connection := &models.ProviderConnection{
		UserID:       user.ID,
		ExternalID:   rc.ID,
		ProviderCode: rc.ProviderCode,
		ProviderName: rc.ProviderName,
		State:        models.ConnectionStateConnected,
	}
	if err := s.connectionRepo.Upsert(connection); err != nil {
		return nil, err
	}
	s.advanceLinkState(ctx, user, models.ConnectionStateConnected)

	return s.FetchTransactions(ctx, rc.ID, user.ID)
}

func (s *syncService) Status(ownerID uuid.UUID) (*dto.SyncStatusResponse, error) {
	user, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	connections, err := s.connectionRepo.ListByUser(ownerID)
	if err != nil {
		return nil, err
	}

	return &dto.SyncStatusResponse{
		LinkState:   user.LinkState,
		Connections: connections,
	}, nil
}

func (s *syncService) transition(ctx context.Context, connection *models.ProviderConnection, next models.ConnectionState) error {
	previous := connection.State
	if !previous.CanTransitionTo(next) && !s.isAbandonedSync(connection, next) {
		return apperrors.New(apperrors.ErrConflict, apperrors.SyncInvalidTransition,
			fmt.Sprintf("connection %s cannot move from %s to %s", connection.ExternalID, previous, next))
	}

	connection.State = next
	connection.UpdatedAt = s.now().UTC()
	if err := s.connectionRepo.Update(connection); err != nil {
		connection.State = previous
		return err
	}

	s.auditLogger.LogConnectionStateChange(ctx, connection.ExternalID, previous, next)
	return nil
}

func (s *syncService) isAbandonedSync(connection *models.ProviderConnection, next models.ConnectionState) bool {
	return connection.State == models.ConnectionStateSyncing &&
		next == models.ConnectionStateSyncing &&
		s.now().Sub(connection.UpdatedAt) > staleSyncAfter
}

// advanceLinkState moves the user's link state forward when the transition is
// allowed. It never fails the caller.
func (s *syncService) advanceLinkState(ctx context.Context, user *models.User, next models.ConnectionState) {
	if user.LinkState == next || !user.LinkState.CanTransitionTo(next) {
		return
	}
	if err := s.userRepo.SetLinkState(user.ID, next); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to update link state", "user_id", user.ID, "error", err)
		}
		return
	}
	user.LinkState = next
}
