package repositories

import (
	"errors"
	"fmt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrConnectionNotFound = apperrors.New(apperrors.ErrNotFound, apperrors.SyncConnectionNotFound, "provider connection not found")

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new provider connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepositoryInterface {
	return &connectionRepository{
		db: db,
	}
}

// Upsert inserts the connection or, when its external id is already known,
// refreshes the provider metadata. Owner and state of an existing row are kept,
// and blank metadata never overwrites stored values.
func (r *connectionRepository) Upsert(connection *models.ProviderConnection) error {
	if connection == nil {
		return errors.New("connection cannot be nil")
	}

	// updated_at doubles as the heartbeat of a running sync, so a replayed
	// upsert must not refresh it.
	heartbeat := gorm.Expr("CASE WHEN provider_connections.state = ? THEN provider_connections.updated_at ELSE excluded.updated_at END",
		models.ConnectionStateSyncing)

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"provider_code": gorm.Expr("COALESCE(NULLIF(excluded.provider_code, ''), provider_connections.provider_code)"),
			"provider_name": gorm.Expr("COALESCE(NULLIF(excluded.provider_name, ''), provider_connections.provider_name)"),
			"updated_at":    heartbeat,
		}),
	}).Create(connection).Error
	if err != nil {
		return fmt.Errorf("failed to upsert provider connection: %w", err)
	}

	stored, err := r.GetByExternalID(connection.ExternalID)
	if err != nil {
		return err
	}
	*connection = *stored

	return nil
}

func (r *connectionRepository) GetByExternalID(externalID string) (*models.ProviderConnection, error) {
	var connection models.ProviderConnection
	if err := r.db.Where("external_id = ?", externalID).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get provider connection: %w", err)
	}
	return &connection, nil
}

func (r *connectionRepository) ListByUser(userID uuid.UUID) ([]models.ProviderConnection, error) {
	var connections []models.ProviderConnection
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to list provider connections: %w", err)
	}
	return connections, nil
}

func (r *connectionRepository) Update(connection *models.ProviderConnection) error {
	if connection == nil {
		return errors.New("connection cannot be nil")
	}

	result := r.db.Model(connection).
		Select("state", "last_synced_at", "last_error", "last_imported", "updated_at").
		Updates(connection)
	if result.Error != nil {
		return fmt.Errorf("failed to update provider connection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}
