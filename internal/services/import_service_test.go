package services

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ImportServiceSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	db          *database.DB
	ledgerRepo  repositories.LedgerRepositoryInterface
	categorizer *service_mocks.MockCategorizerInterface
	ledger      LedgerServiceInterface
	service     *importService
	owner       *models.User
	fixedNow    time.Time
}

func (s *ImportServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	userRepo := repositories.NewUserRepository(s.db.DB)
	s.ledgerRepo = repositories.NewLedgerRepository(s.db.DB)
	s.categorizer = service_mocks.NewMockCategorizerInterface(s.ctrl)
	notifier := service_mocks.NewMockNotifierInterface(s.ctrl)

	logger := slog.New(slog.DiscardHandler)
	audit := NewAuditLogger(logger)
	cfg := config.LedgerConfig{HighExpenseThreshold: decimal.NewFromInt(500), DefaultCurrency: "KZT"}
	s.ledger = NewLedgerService(userRepo, s.ledgerRepo, s.categorizer, notifier, audit, nil, cfg, logger)
	s.service = NewImportService(userRepo, s.ledgerRepo, s.ledger, audit, nil, cfg, logger).(*importService)
	s.fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.fixedNow }

	s.owner = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *ImportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceSuite))
}

func (s *ImportServiceSuite) entries() []models.LedgerEntry {
	entries, err := s.ledgerRepo.ListAll(s.owner.ID, models.LedgerFilters{})
	s.Require().NoError(err)
	return entries
}

func (s *ImportServiceSuite) TestImportCSV_SkipsRowWithoutAmount() {
	s.categorizer.EXPECT().Categorize(gomock.Any(), "Corner shop").Return(models.CategoryFood)

	csvData := strings.Join([]string{
		"date,DESCRIPTION,Amount,Currency,Category,Type",
		"2025-01-15T10:30:00,Monthly Salary,500000.5,KZT,Salary,INCOME",
		"2025-01-16,Corner shop,\"-1,250.25\",,,",
		"2025-01-17,Missing amount,,KZT,Food,EXPENSE",
		"17/01/2025 08:45:00,Uber Ride,-2500,usd,Transport,",
	}, "\n")

	result, err := s.service.ImportCSV(s.ctx, s.owner.ID, strings.NewReader(csvData), dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(3, result.Imported)
	s.Equal(1, result.Skipped)
	s.Require().Len(result.Errors, 1)
	s.Equal(dto.ImportRowError{Row: 4, Reason: "missing amount"}, result.Errors[0])

	balance, err := s.ledger.Balance(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("496250.25").Equal(balance), balance.String())

	entries := s.entries()
	s.Require().Len(entries, 3)
	byDescription := map[string]models.LedgerEntry{}
	for _, e := range entries {
		byDescription[e.Description] = e
		s.Equal(models.EntrySourceImport, e.Source)
	}
	s.Equal(models.DirectionIncome, byDescription["Monthly Salary"].Direction)
	s.Equal(models.CategoryFood, byDescription["Corner shop"].Category)
	s.Equal("USD", byDescription["Uber Ride"].Currency)
	s.Equal(models.DirectionExpense, byDescription["Uber Ride"].Direction)
	s.Equal(time.Date(2025, 1, 17, 8, 45, 0, 0, time.UTC), byDescription["Uber Ride"].OccurredAt.UTC())
}

func (s *ImportServiceSuite) TestImportCSV_QuotedThousandsSeparator() {
	s.categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(models.CategoryUncategorized).AnyTimes()

	csvData := "Date,Description,Amount\n2025-02-01,Rent refund,\"+1,250.75\"\n"
	result, err := s.service.ImportCSV(s.ctx, s.owner.ID, strings.NewReader(csvData), dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(1, result.Imported)

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.True(decimal.RequireFromString("1250.75").Equal(entries[0].Amount))
	s.Equal("KZT", entries[0].Currency)
	s.Equal(models.DirectionIncome, entries[0].Direction)
}

func (s *ImportServiceSuite) TestImportCSV_HeaderErrors() {
	_, err := s.service.ImportCSV(s.ctx, s.owner.ID, strings.NewReader(""), dto.ImportOptions{})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.ImportMissingHeader, apperrors.CodeFor(err))

	_, err = s.service.ImportCSV(s.ctx, s.owner.ID, strings.NewReader("Description,Amount\nx,1\n"), dto.ImportOptions{})
	s.Equal(apperrors.ImportMissingHeader, apperrors.CodeFor(err))
}

func (s *ImportServiceSuite) TestImportRows_Parsing() {
	s.categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(models.CategoryOther).AnyTimes()

	rows := []dto.ImportRow{
		{Line: 2, Date: "2025-03-01", Amount: "abc", Description: "bad amount"},
		{Line: 3, Amount: "10", Description: "no date"},
		{Line: 4, Date: "yesterday", Amount: "0.5", Description: "odd date", Type: "expense"},
		{Line: 5, Date: "2025-03-02T00:00:00+05:00", Amount: "-0.25", Description: "rfc3339", Type: "INCOME", Category: "Groceries"},
	}

	result, err := s.service.ImportRows(s.ctx, s.owner.ID, rows, dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(2, result.Imported)
	s.Equal(2, result.Skipped)
	s.Equal(2, result.Errors[0].Row)
	s.Contains(result.Errors[0].Reason, "invalid amount")
	s.Equal(dto.ImportRowError{Row: 3, Reason: "missing date"}, result.Errors[1])

	byDescription := map[string]models.LedgerEntry{}
	for _, e := range s.entries() {
		byDescription[e.Description] = e
	}
	s.Equal(s.fixedNow, byDescription["odd date"].OccurredAt.UTC())
	s.Equal(models.DirectionExpense, byDescription["odd date"].Direction)

	explicit := byDescription["rfc3339"]
	s.Equal(models.DirectionIncome, explicit.Direction)
	s.True(decimal.RequireFromString("0.25").Equal(explicit.Amount))
	s.Equal(models.CategoryOther, explicit.Category)
	s.Equal(time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC), explicit.OccurredAt.UTC())
}

func (s *ImportServiceSuite) TestImportRows_SkipsUnstorableCurrencyAndScale() {
	s.categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(models.CategoryOther).AnyTimes()

	rows := []dto.ImportRow{
		{Line: 2, Date: "2025-03-01", Amount: "100", Currency: "EURO", Description: "four letters"},
		{Line: 3, Date: "2025-03-01", Amount: "100", Currency: "Tenge", Description: "currency name"},
		{Line: 4, Date: "2025-03-01", Amount: "1.00001", Description: "five decimals"},
		{Line: 5, Date: "2025-03-01", Amount: "2.5000", Currency: " eur ", Description: "kept"},
	}

	result, err := s.service.ImportRows(s.ctx, s.owner.ID, rows, dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.Equal(3, result.Skipped)
	s.Require().Len(result.Errors, 3)
	s.Equal(2, result.Errors[0].Row)
	s.Contains(result.Errors[0].Reason, "three-letter")
	s.Equal(3, result.Errors[1].Row)
	s.Equal(4, result.Errors[2].Row)
	s.Contains(result.Errors[2].Reason, "decimal places")

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal("EUR", entries[0].Currency)
	s.True(decimal.RequireFromString("2.5").Equal(entries[0].Amount))
}

func (s *ImportServiceSuite) TestImportRows_Dedupe() {
	s.categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(models.CategoryFood).AnyTimes()

	rows := []dto.ImportRow{
		{Line: 2, Date: "2025-04-01T09:00:00", Amount: "-12.5", Description: "MAGNUM ALMATY 123"},
	}
	result, err := s.service.ImportRows(s.ctx, s.owner.ID, rows, dto.ImportOptions{Dedupe: true})
	s.Require().NoError(err)
	s.Equal(1, result.Imported)

	rows = []dto.ImportRow{
		{Line: 2, Date: "2025-04-01T18:00:00", Amount: "-12.5", Description: "Magnum Almaty 124"},
		{Line: 3, Date: "2025-04-01", Amount: "-12.5", Description: "Completely different"},
		{Line: 4, Date: "2025-04-01", Amount: "-12.5", Description: "Completely differen"},
		{Line: 5, Date: "2025-04-02", Amount: "-12.5", Description: "MAGNUM ALMATY 123"},
	}
	result, err = s.service.ImportRows(s.ctx, s.owner.ID, rows, dto.ImportOptions{Dedupe: true})
	s.Require().NoError(err)
	s.Equal(2, result.Imported)
	s.Equal(2, result.Duplicates)
	s.Zero(result.Skipped)

	result, err = s.service.ImportRows(s.ctx, s.owner.ID, rows[:1], dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(1, result.Imported, "dedupe is opt-in")
}

func (s *ImportServiceSuite) TestImportRows_UnknownOwner() {
	_, err := s.service.ImportRows(s.ctx, uuid.New(), nil, dto.ImportOptions{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ImportServiceSuite) TestImportFile_Dispatch() {
	_, err := s.service.ImportFile(s.ctx, s.owner.ID, "statement.pdf", bytes.NewReader(nil), dto.ImportOptions{})
	s.Equal(apperrors.ImportUnsupportedFormat, apperrors.CodeFor(err))

	_, err = s.service.ImportFile(s.ctx, s.owner.ID, "statement.xlsx", bytes.NewReader(nil), dto.ImportOptions{})
	s.Equal(apperrors.ImportUnsupportedFormat, apperrors.CodeFor(err))

	_, err = s.service.ImportFile(s.ctx, s.owner.ID, "statement.XLS", bytes.NewReader([]byte("not a workbook")), dto.ImportOptions{})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.ImportUnreadableFile, apperrors.CodeFor(err))

	result, err := s.service.ImportFile(s.ctx, s.owner.ID, "Export.CSV", bytes.NewReader([]byte("Date,Amount\n")), dto.ImportOptions{})
	s.Require().NoError(err)
	s.Zero(result.Imported)
	s.NotNil(result.Errors)
}

func (s *ImportServiceSuite) TestSampleCSVRoundTrips() {
	result, err := s.service.ImportCSV(s.ctx, s.owner.ID, bytes.NewReader(s.service.SampleCSV()), dto.ImportOptions{})
	s.Require().NoError(err)
	s.Equal(5, result.Imported)
	s.Zero(result.Skipped)

	balance, err := s.ledger.Balance(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(554000).Equal(balance), balance.String())
}

func (s *ImportServiceSuite) TestSimilarDescriptions() {
	s.True(similarDescriptions("Netflix.com", "NETFLIX.COM"))
	s.True(similarDescriptions("", ""))
	s.True(similarDescriptions("Starbucks Almaty", "Starbucks Almaty!"))
	s.False(similarDescriptions("Starbucks", "Wolt"))
	s.False(similarDescriptions("abcde", "abcdf"), "one edit in five is exactly the threshold")
}
