package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/agnivade/levenshtein"
	"github.com/extrame/xls"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxXLSRows = 1000

	// Descriptions closer than this (edit distance over the longer length)
	// are considered the same merchant.
	duplicateDistanceThreshold = 0.2
)

// ImportColumns is the header set shared by import, export and the sample file.
var ImportColumns = []string{"Date", "Description", "Amount", "Currency", "Category", "Type"}

var importDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	time.RFC3339,
}

var (
	errMissingAmount = errors.New("missing amount")
	errMissingDate   = errors.New("missing date")
)

type importService struct {
	userRepo        repositories.UserRepositoryInterface
	ledgerRepo      repositories.LedgerRepositoryInterface
	ledger          LedgerServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	defaultCurrency string
	logger          *slog.Logger
	now             func() time.Time
}

// NewImportService creates the tabular import normalizer. Unlabeled rows are
// categorized by the ledger when the batch is appended.
func NewImportService(
	userRepo repositories.UserRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	ledger LedgerServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.LedgerConfig,
	logger *slog.Logger,
) ImportServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &importService{
		userRepo:        userRepo,
		ledgerRepo:      ledgerRepo,
		ledger:          ledger,
		auditLogger:     auditLogger,
		metrics:         metrics,
		defaultCurrency: cfg.DefaultCurrency,
		logger:          logger,
		now:             time.Now,
	}
}

// ImportFile dispatches on the file extension.
func (s *importService) ImportFile(ctx context.Context, ownerID uuid.UUID, filename string, r io.ReadSeeker, opts dto.ImportOptions) (*dto.ImportResult, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return s.ImportCSV(ctx, ownerID, r, opts)
	case ".xls":
		return s.ImportXLS(ctx, ownerID, r, opts)
	default:
		return nil, apperrors.Validationf(apperrors.ImportUnsupportedFormat, "unsupported file %q, use .csv or .xls", filename)
	}
}

func (s *importService) ImportCSV(ctx context.Context, ownerID uuid.UUID, r io.Reader, opts dto.ImportOptions) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.Validationf(apperrors.ImportMissingHeader, "file is empty")
	}
	if err != nil {
		return nil, apperrors.Validationf(apperrors.ImportUnreadableFile, "read header: %v", err)
	}

	columns, err := mapImportColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []dto.ImportRow
	var readErrors []dto.ImportRowError
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErrors = append(readErrors, dto.ImportRowError{Row: line, Reason: err.Error()})
			continue
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, columns.row(line, record))
	}

	result, err := s.ImportRows(ctx, ownerID, rows, opts)
	if err != nil {
		return nil, err
	}
	if len(readErrors) > 0 {
		result.Skipped += len(readErrors)
		result.Errors = append(readErrors, result.Errors...)
	}
	return result, nil
}

// ImportXLS reads a legacy Excel workbook. Rows above the first header row
// are ignored.
func (s *importService) ImportXLS(ctx context.Context, ownerID uuid.UUID, r io.ReadSeeker, opts dto.ImportOptions) (*dto.ImportResult, error) {
	cells, err := readXLS(r)
	if err != nil {
		return nil, err
	}

	headerAt := -1
	var columns importColumns
	for i, record := range cells {
		if mapped, err := mapImportColumns(record); err == nil {
			headerAt, columns = i, mapped
			break
		}
	}
	if headerAt < 0 {
		return nil, apperrors.Validationf(apperrors.ImportMissingHeader, "no header row with Date and Amount columns")
	}

	rows := make([]dto.ImportRow, 0, len(cells)-headerAt-1)
	for i := headerAt + 1; i < len(cells); i++ {
		if isBlankRecord(cells[i]) {
			continue
		}
		rows = append(rows, columns.row(i+1, cells[i]))
	}

	return s.ImportRows(ctx, ownerID, rows, opts)
}

func readXLS(r io.ReadSeeker) (cells [][]string, err error) {
	// The xls decoder panics on some truncated workbooks.
	defer func() {
		if recovered := recover(); recovered != nil {
			cells, err = nil, apperrors.Validationf(apperrors.ImportUnreadableFile, "corrupt workbook: %v", recovered)
		}
	}()

	workbook, err := xls.OpenReader(r, "cp1252")
	if err != nil {
		return nil, apperrors.Validationf(apperrors.ImportUnreadableFile, "open workbook: %v", err)
	}

	cells = workbook.ReadAllCells(maxXLSRows)
	if len(cells) == 0 {
		return nil, apperrors.Validationf(apperrors.ImportMissingHeader, "workbook has no rows")
	}
	return cells, nil
}

// ImportRows parses the rows into drafts and appends them in one batch. Rows
// that cannot be parsed are counted and reported, never fatal.
func (s *importService) ImportRows(ctx context.Context, ownerID uuid.UUID, rows []dto.ImportRow, opts dto.ImportOptions) (*dto.ImportResult, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, err
	}

	result := &dto.ImportResult{Errors: []dto.ImportRowError{}}
	drafts := make([]models.LedgerEntry, 0, len(rows))

	for _, row := range rows {
		draft, err := s.parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: row.Line, Reason: err.Error()})
			s.logger.DebugContext(ctx, "import row skipped", "row", row.Line, "error", err)
			continue
		}

		if opts.Dedupe {
			duplicate, err := s.isDuplicate(ownerID, draft, drafts)
			if err != nil {
				return nil, err
			}
			if duplicate {
				result.Duplicates++
				continue
			}
		}

		drafts = append(drafts, *draft)
	}

	if len(drafts) > 0 {
		created, err := s.ledger.AppendBatch(ctx, ownerID, drafts)
		if err != nil {
			return nil, err
		}
		result.Imported = len(created)
	}

	s.metrics.RecordGauge(MetricImportRows, float64(result.Imported), map[string]string{"outcome": "imported"})
	s.metrics.RecordGauge(MetricImportRows, float64(result.Skipped), map[string]string{"outcome": "skipped"})
	s.metrics.RecordGauge(MetricImportRows, float64(result.Duplicates), map[string]string{"outcome": "duplicate"})
	s.auditLogger.LogImportCompleted(ctx, ownerID, result.Imported, result.Skipped, result.Duplicates)

	return result, nil
}

func (s *importService) parseRow(row dto.ImportRow) (*models.LedgerEntry, error) {
	if strings.TrimSpace(row.Amount) == "" {
		return nil, errMissingAmount
	}
	if strings.TrimSpace(row.Date) == "" {
		return nil, errMissingDate
	}

	signed, err := parseImportAmount(row.Amount)
	if err != nil {
		return nil, err
	}
	if !models.FitsAmountScale(signed) {
		return nil, fmt.Errorf("%w: %q", models.ErrAmountScale, row.Amount)
	}

	direction := models.NormalizeDirection(row.Type)
	if direction == "" {
		direction = models.DirectionFromSigned(signed)
	}

	currency := s.defaultCurrency
	if raw := strings.TrimSpace(row.Currency); raw != "" {
		if currency = models.NormalizeCurrency(raw); currency == "" {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidCurrency, row.Currency)
		}
	}

	return &models.LedgerEntry{
		Amount:      signed.Abs(),
		Direction:   direction,
		Category:    models.CanonicalCategory(row.Category),
		Description: strings.TrimSpace(row.Description),
		Currency:    currency,
		OccurredAt:  s.parseImportDate(row.Date),
		Source:      models.EntrySourceImport,
	}, nil
}

// parseImportAmount accepts "1,234.50", "+15", "-2 500" and similar.
func parseImportAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", " ", "", "\u00a0", "", "+", "").Replace(strings.TrimSpace(raw))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

// parseImportDate tries each layout in order and falls back to the current time.
func (s *importService) parseImportDate(raw string) time.Time {
	value := strings.TrimSpace(raw)
	for _, layout := range importDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC()
		}
	}
	s.logger.Debug("unrecognized import date, using current time", "value", value)
	return s.now().UTC()
}

// isDuplicate reports whether an entry with the same day, amount and direction
// and a near-identical description is already stored or already in the batch.
func (s *importService) isDuplicate(ownerID uuid.UUID, draft *models.LedgerEntry, pending []models.LedgerEntry) (bool, error) {
	for i := range pending {
		if sameDay(pending[i].OccurredAt, draft.OccurredAt) &&
			pending[i].Amount.Equal(draft.Amount) &&
			pending[i].Direction == draft.Direction &&
			similarDescriptions(pending[i].Description, draft.Description) {
			return true, nil
		}
	}

	candidates, err := s.ledgerRepo.FindSameDayAmount(ownerID, draft.OccurredAt, draft.Amount, draft.Direction)
	if err != nil {
		return false, err
	}
	for _, candidate := range candidates {
		if similarDescriptions(candidate.Description, draft.Description) {
			return true, nil
		}
	}
	return false, nil
}

func similarDescriptions(a, b string) bool {
	a, b = strings.ToUpper(strings.TrimSpace(a)), strings.ToUpper(strings.TrimSpace(b))
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return true
	}
	return float64(levenshtein.ComputeDistance(a, b))/float64(longest) < duplicateDistanceThreshold
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// SampleCSV returns a template that imports cleanly.
func (s *importService) SampleCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(ImportColumns)
	_ = w.WriteAll([][]string{
		{"2025-01-15T10:30:00", "Monthly Salary", "500000", "KZT", models.CategorySalary, models.DirectionIncome},
		{"2025-01-16T12:00:00", "Grocery Shopping", "-15000", "KZT", models.CategoryFood, models.DirectionExpense},
		{"2025-01-17T08:45:00", "Uber Ride", "-2500", "KZT", models.CategoryTransport, models.DirectionExpense},
		{"2025-01-18T19:30:00", "Netflix Subscription", "-3500", "KZT", models.CategoryEntertainment, models.DirectionExpense},
		{"2025-01-20T14:00:00", "Freelance Payment", "75000", "KZT", models.CategorySalary, models.DirectionIncome},
	})
	return buf.Bytes()
}

// importColumns maps each known column to its index in a record, -1 when absent.
type importColumns struct {
	date, description, amount, currency, category, kind int
}

func mapImportColumns(header []string) (importColumns, error) {
	columns := importColumns{date: -1, description: -1, amount: -1, currency: -1, category: -1, kind: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "date":
			columns.date = i
		case "description":
			columns.description = i
		case "amount":
			columns.amount = i
		case "currency":
			columns.currency = i
		case "category":
			columns.category = i
		case "type":
			columns.kind = i
		}
	}

	if columns.date < 0 || columns.amount < 0 {
		return columns, apperrors.Validationf(apperrors.ImportMissingHeader, "header must include Date and Amount columns")
	}
	return columns, nil
}

func (c importColumns) row(line int, record []string) dto.ImportRow {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return dto.ImportRow{
		Line:        line,
		Date:        cell(c.date),
		Description: cell(c.description),
		Amount:      cell(c.amount),
		Currency:    cell(c.currency),
		Category:    cell(c.category),
		Type:        cell(c.kind),
	}
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
