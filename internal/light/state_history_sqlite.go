package light

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// SQLiteStateHistoryRepository implements StateHistoryRepository backed by
// the state_history table.
type SQLiteStateHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteStateHistoryRepository creates a repository using the given
// database handle. The handle is shared, not owned; the caller closes it.
func NewSQLiteStateHistoryRepository(db *sql.DB) *SQLiteStateHistoryRepository {
	return &SQLiteStateHistoryRepository{db: db}
}

// RecordStateChange appends a state snapshot to the audit trail.
//
// Parameters:
//   - ctx: Context for cancellation
//   - deviceID: Device the state belongs to (required)
//   - state: The committed state, stored as a JSON document
//   - source: Origin label; empty defaults to StateHistorySourceCommand
func (r *SQLiteStateHistoryRepository) RecordStateChange(ctx context.Context, deviceID string, state State, source string) error {
	if deviceID == "" {
		return errors.New("light: device ID required for history record")
	}
	if source == "" {
		source = StateHistorySourceCommand
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("light: marshal state for history: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO state_history (device_id, state, source) VALUES (?, ?, ?)`,
		deviceID, string(doc), source,
	)
	if err != nil {
		return fmt.Errorf("light: record state change: %w", err)
	}
	return nil
}

// GetHistory returns the most recent entries for a device, newest first.
//
// The limit is clamped to [1, maxHistoryLimit]; non-positive values select
// the default page size.
func (r *SQLiteStateHistoryRepository) GetHistory(ctx context.Context, deviceID string, limit int) ([]StateHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_id, state, source, created_at
		 FROM state_history
		 WHERE device_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		deviceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("light: query state history: %w", err)
	}
	defer rows.Close()

	var entries []StateHistoryEntry
	for rows.Next() {
		var (
			entry     StateHistoryEntry
			doc       string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.DeviceID, &doc, &entry.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("light: scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &entry.State); err != nil {
			return nil, fmt.Errorf("light: unmarshal history state: %w", err)
		}
		ts, err := parseHistoryTimestamp(createdAt)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = ts
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("light: iterate history rows: %w", err)
	}
	return entries, nil
}

// PruneHistory deletes entries older than the cutoff and reports how many
// rows were removed.
func (r *SQLiteStateHistoryRepository) PruneHistory(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM state_history WHERE created_at < ?`,
		olderThan.UTC().Format("2006-01-02T15:04:05Z"),
	)
	if err != nil {
		return 0, fmt.Errorf("light: prune state history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("light: prune rows affected: %w", err)
	}
	return n, nil
}

// parseHistoryTimestamp accepts the second-precision format written by the
// schema default as well as full RFC 3339.
func parseHistoryTimestamp(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02T15:04:05Z", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("light: parse history timestamp %q: %w", raw, err)
	}
	return ts, nil
}
