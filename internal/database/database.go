package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// OpenMigrationConn opens a plain lib/pq connection for the migration runner.
func OpenMigrationConn(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.LedgerEntry{},
		&models.CategoryRule{},
		&models.ProviderConnection{},
		&models.Notification{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_user_occurred ON ledger_entries(user_id, occurred_at DESC, id DESC)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_user_direction ON ledger_entries(user_id, direction)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_category ON ledger_entries(category)",
		"CREATE INDEX IF NOT EXISTS idx_provider_connections_user_id ON provider_connections(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications(user_id) WHERE read = false",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize connects, brings the schema up to date and creates indexes.
// Versioned migrations run when enabled; gorm's AutoMigrate covers the rest.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Database.ReadyAttempts)*cfg.Database.ReadyInterval+30*time.Second)
	defer cancel()

	status, migrationErr := func() (SchemaStatus, error) {
		conn, err := OpenMigrationConn(&cfg.Database)
		if err != nil {
			return SchemaStatus{}, err
		}
		defer conn.Close()
		return Migrate(ctx, conn, &cfg.Database, slog.Default())
	}()

	if migrationErr != nil {
		if !errors.Is(migrationErr, errMigrationDisabled) {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", migrationErr)
		}
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		slog.Info("schema ready", "version", status.Version)
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db.DB, nil
}
