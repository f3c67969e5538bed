package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migratorConfig(attempts int) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		AutoMigrate:    true,
		MigrationsPath: "/nonexistent/migrations",
		ReadyAttempts:  attempts,
		ReadyInterval:  10 * time.Millisecond,
	}
}

type stubSeeder struct {
	added int
	err   error
	calls int
}

func (s *stubSeeder) SeedDefaults() (int, error) {
	s.calls++
	return s.added, s.err
}

func TestNewMigrator(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := migratorConfig(0)
	cfg.MigrationsPath = "db/migrations"
	m := NewMigrator(db, cfg, nil)

	assert.Equal(t, db, m.conn)
	assert.Equal(t, "db/migrations", m.path)
	assert.Equal(t, 1, m.attempts)
	assert.NotNil(t, m.logger)
}

func TestMigrator_WaitReady(t *testing.T) {
	refused := errors.New("connection refused")
	tests := []struct {
		name    string
		pings   []error
		wantErr bool
	}{
		{name: "ready immediately", pings: []error{nil}},
		{name: "ready on retry", pings: []error{refused, nil}},
		{name: "never ready", pings: []error{refused, refused}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			for _, pingErr := range tt.pings {
				mock.ExpectPing().WillReturnError(pingErr)
			}

			err = NewMigrator(db, migratorConfig(2), nil).WaitReady(context.Background())
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDatabaseNotReady)
				assert.ErrorIs(t, err, refused)
				assert.Contains(t, err.Error(), "after 2 attempts")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMigrator_WaitReadyHonorsContext(t *testing.T) {
	db, _, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = NewMigrator(db, migratorConfig(5), nil).WaitReady(ctx)
	assert.ErrorIs(t, err, ErrDatabaseNotReady)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMigrator_MissingMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, migratorConfig(1), nil)

	_, err = m.Up()
	assert.ErrorIs(t, err, ErrNoMigrations)

	_, err = m.Status()
	assert.ErrorIs(t, err, ErrNoMigrations)
}

func TestMigrate(t *testing.T) {
	t.Run("disabled skips the database", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		cfg := migratorConfig(1)
		cfg.AutoMigrate = false

		_, err = Migrate(context.Background(), db, cfg, nil)
		assert.ErrorIs(t, err, errMigrationDisabled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database never ready", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		_, err = Migrate(context.Background(), db, migratorConfig(1), nil)
		assert.ErrorIs(t, err, ErrDatabaseNotReady)
	})

	t.Run("ready without migrations", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()

		_, err = Migrate(context.Background(), db, migratorConfig(1), nil)
		assert.ErrorIs(t, err, ErrNoMigrations)
	})
}

func TestSeedRules(t *testing.T) {
	seeder := &stubSeeder{added: 24}
	assert.Equal(t, 24, SeedRules(seeder, nil))

	seeder = &stubSeeder{err: errors.New("table missing")}
	assert.Zero(t, SeedRules(seeder, nil))
	assert.Equal(t, 1, seeder.calls)
}
