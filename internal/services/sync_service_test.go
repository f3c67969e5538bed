package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SyncServiceSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	db             *database.DB
	userRepo       repositories.UserRepositoryInterface
	connectionRepo repositories.ConnectionRepositoryInterface
	ledgerRepo     repositories.LedgerRepositoryInterface
	provider       *service_mocks.MockProviderClientInterface
	categorizer    *service_mocks.MockCategorizerInterface
	notifier       *service_mocks.MockNotifierInterface
	ledger         LedgerServiceInterface
	service        *syncService
	owner          *models.User
}

func (s *SyncServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.userRepo = repositories.NewUserRepository(s.db.DB)
	s.connectionRepo = repositories.NewConnectionRepository(s.db.DB)
	s.ledgerRepo = repositories.NewLedgerRepository(s.db.DB)
	s.provider = service_mocks.NewMockProviderClientInterface(s.ctrl)
	s.categorizer = service_mocks.NewMockCategorizerInterface(s.ctrl)
	s.notifier = service_mocks.NewMockNotifierInterface(s.ctrl)

	logger := slog.New(slog.DiscardHandler)
	audit := NewAuditLogger(logger)
	s.ledger = NewLedgerService(s.userRepo, s.ledgerRepo, s.categorizer, s.notifier, audit, nil,
		config.LedgerConfig{HighExpenseThreshold: decimal.NewFromInt(1_000_000), DefaultCurrency: "KZT"}, logger)
	s.service = NewSyncService(s.userRepo, s.connectionRepo, s.ledgerRepo, s.ledger, s.categorizer,
		s.provider, s.notifier, audit, nil, logger).(*syncService)

	s.owner = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(models.CategoryUncategorized).AnyTimes()
}

func (s *SyncServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceSuite))
}

func (s *SyncServiceSuite) linkCustomer(customerID string) {
	s.Require().NoError(s.userRepo.SetProviderCustomerID(s.owner.ID, customerID))
	s.Require().NoError(s.userRepo.SetLinkState(s.owner.ID, models.ConnectionStateSessionCreated))
}

func (s *SyncServiceSuite) connection(externalID string) *models.ProviderConnection {
	conn := &models.ProviderConnection{UserID: s.owner.ID, ExternalID: externalID, ProviderName: "Fake Bank"}
	s.Require().NoError(s.connectionRepo.Upsert(conn))
	return conn
}

func tx(id, madeOn, amount, description string) dto.SaltEdgeTransaction {
	return dto.SaltEdgeTransaction{
		ID:           id,
		MadeOn:       madeOn,
		Amount:       decimal.RequireFromString(amount),
		CurrencyCode: "kzt",
		Description:  description,
	}
}

func (s *SyncServiceSuite) balance() decimal.Decimal {
	balance, err := s.ledger.Balance(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	return balance
}

func (s *SyncServiceSuite) TestFetchTransactions_IsIdempotent() {
	s.connection("conn-1")
	pages := func() {
		s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
			Return([]dto.SaltEdgeTransaction{
				tx("tx-1", "2025-03-01", "1200.5", "Payroll"),
				tx("tx-2", "2025-03-02", "-25.25", "Wolt"),
			}, "tx-3", nil)
		s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "tx-3").
			Return([]dto.SaltEdgeTransaction{tx("tx-3", "2025-03-03", "-100", "Bolt")}, "", nil)
	}

	pages()
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, "3 new transactions imported from Fake Bank")
	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(created, 3)
	s.True(decimal.RequireFromString("1075.25").Equal(s.balance()))

	payroll := created[0]
	s.Equal(models.DirectionIncome, payroll.Direction)
	s.Equal(models.EntrySourceSync, payroll.Source)
	s.Equal("KZT", payroll.Currency)
	s.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), payroll.OccurredAt.UTC())
	s.Require().NotNil(payroll.ExternalID)
	s.Equal("tx-1", *payroll.ExternalID)
	s.Equal(models.DirectionExpense, created[1].Direction)
	s.True(decimal.RequireFromString("25.25").Equal(created[1].Amount))

	pages()
	created, err = s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Empty(created)
	s.True(decimal.RequireFromString("1075.25").Equal(s.balance()))

	stored, err := s.connectionRepo.GetByExternalID("conn-1")
	s.Require().NoError(err)
	s.Equal(models.ConnectionStateIdle, stored.State)
	s.NotNil(stored.LastSyncedAt)
	s.Zero(stored.LastImported)
}

func (s *SyncServiceSuite) TestFetchTransactions_SkipsDuplicatedAndRepeatedRecords() {
	s.connection("conn-1")
	flagged := tx("tx-2", "2025-03-02", "-10", "Flagged")
	flagged.Duplicated = true

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{
			tx("tx-1", "2025-03-01", "50", "Refund"),
			flagged,
			tx("tx-1", "2025-03-01", "50", "Refund"),
			tx("", "2025-03-01", "50", "No id"),
		}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, gomock.Any())

	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Len(created, 1)
	s.True(decimal.NewFromInt(50).Equal(s.balance()))
}

func (s *SyncServiceSuite) TestFetchTransactions_RejectsUnstorableRecords() {
	s.connection("conn-1")
	longCurrency := tx("tx-2", "2025-03-01", "-5", "Coffee")
	longCurrency.CurrencyCode = "EURO"
	missingCurrency := tx("tx-3", "2025-03-01", "-5", "Tea")
	missingCurrency.CurrencyCode = ""
	fineGrained := tx("tx-4", "2025-03-01", "1.00001", "Interest")

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{
			tx("tx-1", "2025-03-01", "20.1234", "Refund"),
			longCurrency,
			missingCurrency,
			fineGrained,
		}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, "1 new transactions imported from Fake Bank")

	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal("KZT", created[0].Currency)
	s.True(decimal.RequireFromString("20.1234").Equal(s.balance()))

	existing, err := s.ledgerRepo.ExistingExternalIDs([]string{"tx-2", "tx-3", "tx-4"})
	s.Require().NoError(err)
	s.Empty(existing)
}

func (s *SyncServiceSuite) TestFetchTransactions_CategoryFallbacks() {
	s.connection("conn-1")
	withProviderCategory := tx("tx-1", "2025-03-01", "-12.5", "")
	withProviderCategory.Extra.Payee = "Yandex Go"
	withProviderCategory.Category = "transport"
	unknownCategory := tx("tx-2", "2025-03-01", "-1", "Kiosk")
	unknownCategory.Category = "car_rental"

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{withProviderCategory, unknownCategory}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(created, 2)
	s.Equal("Yandex Go", created[0].Description)
	s.Equal(models.CategoryTransport, created[0].Category)
	s.Equal(models.CategoryUncategorized, created[1].Category)
}

func (s *SyncServiceSuite) TestFetchTransactions_FailureKeepsCommittedPages() {
	s.connection("conn-1")
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{tx("tx-1", "2025-03-01", "300", "Salary")}, "tx-2", nil)
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "tx-2").
		Return(nil, "", &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: "list_transactions", StatusCode: http.StatusServiceUnavailable, Err: errors.New("down")})

	_, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.ErrorIs(err, apperrors.ErrExternalService)
	s.True(decimal.NewFromInt(300).Equal(s.balance()))

	stored, err := s.connectionRepo.GetByExternalID("conn-1")
	s.Require().NoError(err)
	s.Equal(models.ConnectionStateError, stored.State)
	s.Equal(1, stored.LastImported)
	s.Contains(stored.LastError, "down")

	// Retry resumes from ERROR without duplicating the first page.
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{tx("tx-1", "2025-03-01", "300", "Salary")}, "tx-2", nil)
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "tx-2").
		Return([]dto.SaltEdgeTransaction{tx("tx-2", "2025-03-02", "-0.5", "Tea")}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, gomock.Any())

	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Len(created, 1)
	s.True(decimal.RequireFromString("299.5").Equal(s.balance()))
}

func (s *SyncServiceSuite) TestFetchTransactions_StuckCursor() {
	s.connection("conn-1")
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return(nil, "tx-9", nil)
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "tx-9").
		Return(nil, "tx-9", nil)

	_, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.ErrorIs(err, apperrors.ErrExternalService)
}

func (s *SyncServiceSuite) TestFetchTransactions_OwnershipAndState() {
	s.connection("conn-1")
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	_, err := s.service.FetchTransactions(s.ctx, "conn-1", other.ID)
	s.ErrorIs(err, repositories.ErrConnectionNotFound)

	_, err = s.service.FetchTransactions(s.ctx, "missing", s.owner.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	conn, err := s.connectionRepo.GetByExternalID("conn-1")
	s.Require().NoError(err)
	conn.State = models.ConnectionStateSyncing
	s.Require().NoError(s.connectionRepo.Update(conn))

	_, err = s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Equal(apperrors.SyncInvalidTransition, apperrors.CodeFor(err))
}

func (s *SyncServiceSuite) TestFetchTransactions_RestartsAbandonedSync() {
	s.connection("conn-1")
	s.Require().NoError(s.db.DB.Model(&models.ProviderConnection{}).
		Where("external_id = ?", "conn-1").
		UpdateColumns(map[string]interface{}{
			"state":      models.ConnectionStateSyncing,
			"updated_at": time.Now().UTC().Add(-time.Hour),
		}).Error)

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").Return(nil, "", nil)

	created, err := s.service.FetchTransactions(s.ctx, "conn-1", s.owner.ID)
	s.Require().NoError(err)
	s.Empty(created)
}

func (s *SyncServiceSuite) TestCreateSession_ProvisionsCustomerOnce() {
	session := &dto.SaltEdgeConnectSession{ConnectURL: "https://connect.example/abc", ExpiresAt: time.Now().Add(time.Hour)}
	s.provider.EXPECT().CreateCustomer(gomock.Any(), "owner@example.com").Return("cust-1", nil).Times(1)
	s.provider.EXPECT().CreateConnectSession(gomock.Any(), "cust-1").Return(session, nil).Times(2)

	resp, err := s.service.CreateSession(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Equal(session.ConnectURL, resp.ConnectURL)

	_, err = s.service.CreateSession(s.ctx, s.owner.ID)
	s.Require().NoError(err)

	user, err := s.userRepo.GetByID(s.owner.ID)
	s.Require().NoError(err)
	s.Equal("cust-1", *user.ProviderCustomerID)
	s.Equal(models.ConnectionStateSessionCreated, user.LinkState)
}

func (s *SyncServiceSuite) TestCreateSession_ProviderFailure() {
	s.provider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", ErrProviderNotConfigured)

	_, err := s.service.CreateSession(s.ctx, s.owner.ID)
	s.ErrorIs(err, ErrProviderNotConfigured)

	user, err := s.userRepo.GetByID(s.owner.ID)
	s.Require().NoError(err)
	s.False(user.HasProviderCustomer())
	s.Equal(models.ConnectionStateUnlinked, user.LinkState)
}

func (s *SyncServiceSuite) TestHandleCallback_ReplayIsIdempotent() {
	s.linkCustomer("cust-1")
	callback := dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-1", Stage: "finish"}}

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{tx("tx-1", "2025-03-01", "75.75", "Cashback")}, "", nil).Times(2)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, "1 new transactions imported from your bank").Times(1)

	s.Require().NoError(s.service.HandleCallback(s.ctx, callback))
	s.Require().NoError(s.service.HandleCallback(s.ctx, callback))

	s.True(decimal.RequireFromString("75.75").Equal(s.balance()))

	status, err := s.service.Status(s.owner.ID)
	s.Require().NoError(err)
	s.Equal(models.ConnectionStateConnected, status.LinkState)
	s.Require().Len(status.Connections, 1)
	s.Equal(models.ConnectionStateIdle, status.Connections[0].State)
}

func (s *SyncServiceSuite) TestHandleCallback_ReplayDuringSyncIsAcknowledged() {
	s.linkCustomer("cust-1")
	s.connection("conn-1")
	s.Require().NoError(s.db.DB.Model(&models.ProviderConnection{}).
		Where("external_id = ?", "conn-1").
		Update("state", models.ConnectionStateSyncing).Error)
	heartbeat, err := s.connectionRepo.GetByExternalID("conn-1")
	s.Require().NoError(err)

	callback := dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-1", Stage: "finish"}}
	s.NoError(s.service.HandleCallback(s.ctx, callback))

	stored, err := s.connectionRepo.GetByExternalID("conn-1")
	s.Require().NoError(err)
	s.Equal(models.ConnectionStateSyncing, stored.State)
	s.True(heartbeat.UpdatedAt.Equal(stored.UpdatedAt))
	s.True(decimal.Zero.Equal(s.balance()))
}

func (s *SyncServiceSuite) TestHandleCallback_ReplayRestartsAbandonedSync() {
	s.linkCustomer("cust-1")
	s.connection("conn-1")
	s.Require().NoError(s.db.DB.Model(&models.ProviderConnection{}).
		Where("external_id = ?", "conn-1").
		UpdateColumns(map[string]interface{}{
			"state":      models.ConnectionStateSyncing,
			"updated_at": time.Now().UTC().Add(-time.Hour),
		}).Error)

	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-1", "").
		Return([]dto.SaltEdgeTransaction{tx("tx-1", "2025-03-01", "10", "Cashback")}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, gomock.Any())

	callback := dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-1", Stage: "finish"}}
	s.Require().NoError(s.service.HandleCallback(s.ctx, callback))
	s.True(decimal.NewFromInt(10).Equal(s.balance()))
}

func (s *SyncServiceSuite) TestHandleCallback_Rejections() {
	s.linkCustomer("cust-1")

	err := s.service.HandleCallback(s.ctx, dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{CustomerID: "cust-1", Stage: "finish"}})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.SyncInvalidCallback, apperrors.CodeFor(err))

	err = s.service.HandleCallback(s.ctx, dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-1", Stage: "fetching"}})
	s.NoError(err)
	_, err = s.connectionRepo.GetByExternalID("conn-1")
	s.ErrorIs(err, repositories.ErrConnectionNotFound)

	err = s.service.HandleCallback(s.ctx, dto.SaltEdgeCallback{Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-unknown", Stage: "finish"}})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SyncServiceSuite) TestImportAllConnections_ContinuesAfterFailure() {
	s.linkCustomer("cust-1")
	s.provider.EXPECT().ListConnections(gomock.Any(), "cust-1").Return([]dto.SaltEdgeConnection{
		{ID: "conn-a", ProviderCode: "bank_a", ProviderName: "Bank A"},
		{ID: "conn-b", ProviderCode: "bank_b", ProviderName: "Bank B"},
	}, nil)
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-a", "").
		Return(nil, "", &apperrors.ExternalServiceError{Service: saltEdgeService, Operation: "list_transactions", StatusCode: http.StatusBadGateway, Err: errors.New("bad gateway")})
	s.provider.EXPECT().ListTransactions(gomock.Any(), "conn-b", "").
		Return([]dto.SaltEdgeTransaction{tx("tx-b1", "2025-03-05", "40", "Gift")}, "", nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.owner.ID, newTransactionsTitle, "1 new transactions imported from Bank B")

	resp, err := s.service.ImportAllConnections(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Equal(1, resp.Imported)
	s.Require().Len(resp.Connections, 2)
	s.NotEmpty(resp.Connections[0].Error)
	s.Empty(resp.Connections[1].Error)
	s.Equal(1, resp.Connections[1].Imported)

	conn, err := s.connectionRepo.GetByExternalID("conn-b")
	s.Require().NoError(err)
	s.Equal("bank_b", conn.ProviderCode)
}

func (s *SyncServiceSuite) TestImportAllConnections_WithoutCustomer() {
	resp, err := s.service.ImportAllConnections(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Empty(resp.Connections)
	s.Zero(resp.Imported)
}
