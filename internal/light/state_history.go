package light

import (
	"context"
	"time"
)

// State history sources. Recorded alongside each entry so the audit trail
// shows where a change came from.
const (
	StateHistorySourceCommand = "command" // single-field HTTP operation
	StateHistorySourceBulk    = "bulk"    // atomic settings replace
	StateHistorySourceMQTT    = "mqtt"    // broker command intake
)

// StateHistoryEntry is one recorded state change.
type StateHistoryEntry struct {
	ID        int64     `json:"id"`
	DeviceID  string    `json:"device_id"`
	State     State     `json:"state"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// StateHistoryRepository records and queries the state-change audit trail.
//
// The history is write-behind and informational only: the light never reads
// it back to restore state on startup.
type StateHistoryRepository interface {
	// RecordStateChange appends a committed state with its source label.
	RecordStateChange(ctx context.Context, deviceID string, state State, source string) error

	// GetHistory returns the most recent entries for a device, newest first.
	// A non-positive limit selects the default page size.
	GetHistory(ctx context.Context, deviceID string, limit int) ([]StateHistoryEntry, error)
}
