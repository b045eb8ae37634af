package domain

import "time"

// Channels used for best-effort event publication on successful operations.
const (
	ChannelIntegrationConnected = "integration.connected"
	ChannelImportCompleted      = "catalog.import.completed"
)

// ConnectionEvent announces a newly connected integration.
type ConnectionEvent struct {
	ConnectionID string    `json:"connection_id"`
	UserID       string    `json:"user_id"`
	Platform     string    `json:"platform"`
	ConnectedAt  time.Time `json:"connected_at"`
}

// ImportEvent announces a completed product import batch.
type ImportEvent struct {
	Inserted    int       `json:"inserted"`
	Failed      int       `json:"failed"`
	CompletedAt time.Time `json:"completed_at"`
}
