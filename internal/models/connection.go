package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionState tracks a bank link through the provider flow.
//
//	UNLINKED -> SESSION_CREATED -> CONNECTED -> SYNCING -> IDLE
//	SYNCING -> ERROR -> SYNCING
//
// Users hold UNLINKED/SESSION_CREATED until the first connection exists;
// each ProviderConnection holds CONNECTED and later states.
type ConnectionState string

const (
	ConnectionStateUnlinked       ConnectionState = "UNLINKED"
	ConnectionStateSessionCreated ConnectionState = "SESSION_CREATED"
	ConnectionStateConnected      ConnectionState = "CONNECTED"
	ConnectionStateSyncing        ConnectionState = "SYNCING"
	ConnectionStateIdle           ConnectionState = "IDLE"
	ConnectionStateError          ConnectionState = "ERROR"
)

var connectionTransitions = map[ConnectionState][]ConnectionState{
	ConnectionStateUnlinked:       {ConnectionStateSessionCreated},
	ConnectionStateSessionCreated: {ConnectionStateSessionCreated, ConnectionStateConnected},
	ConnectionStateConnected:      {ConnectionStateConnected, ConnectionStateSyncing},
	ConnectionStateSyncing:        {ConnectionStateIdle, ConnectionStateError},
	ConnectionStateIdle:           {ConnectionStateSyncing, ConnectionStateConnected, ConnectionStateSessionCreated},
	ConnectionStateError:          {ConnectionStateSyncing, ConnectionStateConnected, ConnectionStateSessionCreated},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s ConnectionState) CanTransitionTo(next ConnectionState) bool {
	for _, allowed := range connectionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ConnectionState) String() string {
	return string(s)
}

// ProviderConnection is a bank connection created through the provider's connect flow.
type ProviderConnection struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ExternalID   string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"connection_id"`
	ProviderCode string          `gorm:"type:varchar(100)" json:"provider_code,omitempty"`
	ProviderName string          `gorm:"type:varchar(200)" json:"provider_name,omitempty"`
	State        ConnectionState `gorm:"type:varchar(20);not null" json:"state"`
	LastSyncedAt *time.Time      `json:"last_synced_at,omitempty"`
	LastError    string          `gorm:"type:text" json:"last_error,omitempty"`
	LastImported int             `gorm:"not null;default:0" json:"last_imported"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

func (c *ProviderConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	if c.State == "" {
		c.State = ConnectionStateConnected
	}
	return nil
}

func (c *ProviderConnection) TableName() string {
	return "provider_connections"
}
