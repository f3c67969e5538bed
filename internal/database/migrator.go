package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	ErrNoMigrations      = errors.New("migrations directory not found")
	ErrDatabaseNotReady  = errors.New("database not ready")
	errMigrationDisabled = errors.New("auto-migration disabled")
)

// SchemaStatus is the migration version recorded in schema_migrations.
type SchemaStatus struct {
	Version uint
	Dirty   bool
}

// RuleSeeder installs the built-in category rules. It must be idempotent.
type RuleSeeder interface {
	SeedDefaults() (int, error)
}

// Migrator applies the versioned ledger schema over a plain lib/pq connection.
type Migrator struct {
	conn     *sql.DB
	path     string
	attempts int
	interval time.Duration
	logger   *slog.Logger
}

func NewMigrator(conn *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	attempts := cfg.ReadyAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Migrator{
		conn:     conn,
		path:     cfg.MigrationsPath,
		attempts: attempts,
		interval: cfg.ReadyInterval,
		logger:   logger,
	}
}

// WaitReady pings until the database answers, the attempts run out or ctx ends.
func (m *Migrator) WaitReady(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		if lastErr = m.conn.PingContext(ctx); lastErr == nil {
			return nil
		}
		m.logger.Warn("database not ready", "attempt", attempt, "max_attempts", m.attempts, "error", lastErr)

		if attempt == m.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrDatabaseNotReady, ctx.Err())
		case <-time.After(m.interval):
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrDatabaseNotReady, m.attempts, lastErr)
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	if _, err := os.Stat(m.path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMigrations, m.path)
	}

	absPath, err := filepath.Abs(m.path)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.conn, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres migration driver: %w", err)
	}

	instance, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migration instance: %w", err)
	}
	return instance, nil
}

// Up applies pending migrations. A dirty version left by a crashed run is
// forced clean first so the next step can be retried.
func (m *Migrator) Up() (SchemaStatus, error) {
	instance, err := m.instance()
	if err != nil {
		return SchemaStatus{}, err
	}

	before, err := readStatus(instance)
	if err != nil {
		return SchemaStatus{}, err
	}
	if before.Dirty {
		m.logger.Warn("schema is dirty, forcing version", "version", before.Version)
		if err := instance.Force(int(before.Version)); err != nil {
			return before, fmt.Errorf("force schema version %d: %w", before.Version, err)
		}
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return before, fmt.Errorf("apply migrations: %w", err)
	}

	after, err := readStatus(instance)
	if err != nil {
		return before, err
	}
	if after.Version == before.Version {
		m.logger.Info("schema up to date", "version", after.Version)
	} else {
		m.logger.Info("schema migrated", "from", before.Version, "to", after.Version)
	}
	return after, nil
}

// Status reports the applied version without migrating.
func (m *Migrator) Status() (SchemaStatus, error) {
	instance, err := m.instance()
	if err != nil {
		return SchemaStatus{}, err
	}
	return readStatus(instance)
}

func readStatus(instance *migrate.Migrate) (SchemaStatus, error) {
	version, dirty, err := instance.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return SchemaStatus{}, nil
	}
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read schema version: %w", err)
	}
	return SchemaStatus{Version: version, Dirty: dirty}, nil
}

// Migrate waits for the database and applies the schema when AutoMigrate is
// on. It returns errMigrationDisabled otherwise so the caller can fall back to
// gorm's AutoMigrate.
func Migrate(ctx context.Context, conn *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) (SchemaStatus, error) {
	if !cfg.AutoMigrate {
		return SchemaStatus{}, errMigrationDisabled
	}

	migrator := NewMigrator(conn, cfg, logger)
	if err := migrator.WaitReady(ctx); err != nil {
		return SchemaStatus{}, err
	}
	return migrator.Up()
}

// SeedRules installs the built-in category dictionary. Failures are logged
// and do not stop startup.
func SeedRules(seeder RuleSeeder, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}
	added, err := seeder.SeedDefaults()
	if err != nil {
		logger.Warn("failed to seed category rules", "error", err)
		return 0
	}
	if added > 0 {
		logger.Info("category rules seeded", "added", added)
	}
	return added
}
