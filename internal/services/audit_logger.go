package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace id into service calls.
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx carrying id for audit records.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogLedgerMutation(ctx context.Context, ownerID, entryID uuid.UUID, operation string) {
	al.logger.InfoContext(ctx, "ledger mutation",
		slog.String("event_type", "ledger_mutation"),
		slog.String("owner_id", ownerID.String()),
		slog.String("entry_id", entryID.String()),
		slog.String("operation", operation),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceRecomputed(ctx context.Context, ownerID uuid.UUID, oldBalance, newBalance string) {
	level := slog.LevelInfo
	if oldBalance != newBalance {
		// cached value had drifted from the ledger
		level = slog.LevelWarn
	}
	al.logger.Log(ctx, level, "balance recomputed",
		slog.String("event_type", "balance_recomputed"),
		slog.String("owner_id", ownerID.String()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRuleLearned(ctx context.Context, keyword, category string, confidence float64) {
	al.logger.InfoContext(ctx, "category rule learned",
		slog.String("event_type", "rule_learned"),
		slog.String("keyword", keyword),
		slog.String("category", category),
		slog.Float64("confidence", confidence),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncStarted(ctx context.Context, connectionID string, ownerID uuid.UUID) {
	al.logger.InfoContext(ctx, "sync started",
		slog.String("event_type", "sync_started"),
		slog.String("connection_id", connectionID),
		slog.String("owner_id", ownerID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncCompleted(ctx context.Context, connectionID string, imported, skipped int, durationMs int64) {
	al.logger.InfoContext(ctx, "sync completed",
		slog.String("event_type", "sync_completed"),
		slog.String("connection_id", connectionID),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncFailed(ctx context.Context, connectionID string, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "sync failed",
		slog.String("event_type", "sync_failed"),
		slog.String("connection_id", connectionID),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogConnectionStateChange(ctx context.Context, connectionID string, oldState, newState models.ConnectionState) {
	al.logger.InfoContext(ctx, "connection state change",
		slog.String("event_type", "connection_state_change"),
		slog.String("connection_id", connectionID),
		slog.String("old_state", oldState.String()),
		slog.String("new_state", newState.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogImportCompleted(ctx context.Context, ownerID uuid.UUID, imported, skipped, duplicates int) {
	al.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("owner_id", ownerID.String()),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
		slog.Int("duplicates", duplicates),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
