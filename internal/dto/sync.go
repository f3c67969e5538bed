package dto

import (
	"time"

	"fintrack/internal/models"
)

type ConnectSessionResponse struct {
	ConnectURL string    `json:"connect_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type FetchResponse struct {
	ConnectionID string          `json:"connection_id"`
	Imported     int             `json:"imported"`
	Entries      []EntryResponse `json:"entries"`
}

type ConnectionSyncResult struct {
	ConnectionID string `json:"connection_id"`
	Imported     int    `json:"imported"`
	Error        string `json:"error,omitempty"`
}

type ImportAllResponse struct {
	Connections []ConnectionSyncResult `json:"connections"`
	Imported    int                    `json:"imported"`
}

type SyncStatusResponse struct {
	LinkState   models.ConnectionState      `json:"link_state"`
	Connections []models.ProviderConnection `json:"connections"`
}
