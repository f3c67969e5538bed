package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const exportDateLayout = "2006-01-02T15:04:05"

var ErrInvalidReportPeriod = apperrors.New(apperrors.ErrValidation, apperrors.ValidationOutOfRange, "month must be between 1 and 12")

type reportService struct {
	userRepo   repositories.UserRepositoryInterface
	ledgerRepo repositories.LedgerRepositoryInterface
	logger     *slog.Logger
	now        func() time.Time
}

func NewReportService(
	userRepo repositories.UserRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// MonthlySummary totals one calendar month (UTC) for the owner.
func (s *reportService) MonthlySummary(ownerID uuid.UUID, year, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidReportPeriod
	}

	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	income, expense, err := s.ledgerRepo.Totals(ownerID, from, to)
	if err != nil {
		s.logger.Error("failed to compute monthly totals",
			"user_id", ownerID,
			"year", year,
			"month", month,
			"error", err,
		)
		return nil, err
	}

	breakdown, err := s.ledgerRepo.CategoryBreakdown(ownerID, from, to)
	if err != nil {
		return nil, err
	}
	if breakdown == nil {
		breakdown = []models.CategorySummary{}
	}

	return &models.MonthlySummary{
		Year:       year,
		Month:      month,
		Income:     income,
		Expense:    expense,
		Net:        income.Sub(expense),
		ByCategory: breakdown,
	}, nil
}

// ExportCSV writes the owner's entries with the import header set plus a
// leading ID column, so the file can be imported back.
func (s *reportService) ExportCSV(ownerID uuid.UUID, filters models.LedgerFilters, w io.Writer) error {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return err
	}

	entries, err := s.ledgerRepo.ListAll(ownerID, filters)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"ID"}, ImportColumns...)); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.ID.String(),
			entry.OccurredAt.UTC().Format(exportDateLayout),
			entry.Description,
			entry.SignedAmount().StringFixed(2),
			entry.Currency,
			entry.Category,
			entry.Direction,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	s.logger.Info("ledger exported", "user_id", ownerID, "entries", len(entries))
	return nil
}
