package light

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// newHistoryDB creates an in-memory database with the state_history schema.
func newHistoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE state_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			device_id  TEXT NOT NULL,
			state      TEXT NOT NULL,
			source     TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		)`)
	if err != nil {
		t.Fatalf("create state_history table: %v", err)
	}
	return db
}

func TestRecordAndGetHistory(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))
	ctx := context.Background()

	states := []State{
		{IsOn: true, Brightness: 100, ColorTemperature: 4000, Mode: ModeEco},
		{IsOn: true, Brightness: 50, ColorTemperature: 4000, Mode: ModeEco},
		{IsOn: true, Brightness: 50, ColorTemperature: 3000, Mode: ModeNight},
	}
	sources := []string{StateHistorySourceCommand, StateHistorySourceCommand, StateHistorySourceBulk}

	for i, state := range states {
		if err := repo.RecordStateChange(ctx, "light-test", state, sources[i]); err != nil {
			t.Fatalf("RecordStateChange(%d): %v", i, err)
		}
	}

	entries, err := repo.GetHistory(ctx, "light-test", 10)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Newest first.
	if entries[0].State != states[2] {
		t.Errorf("newest entry state = %+v, want %+v", entries[0].State, states[2])
	}
	if entries[0].Source != StateHistorySourceBulk {
		t.Errorf("newest entry source = %q, want %q", entries[0].Source, StateHistorySourceBulk)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("entry timestamp is zero")
	}
}

func TestRecordStateChangeRequiresDeviceID(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))

	err := repo.RecordStateChange(context.Background(), "", DefaultState(), StateHistorySourceCommand)
	if err == nil {
		t.Fatal("expected error for empty device ID")
	}
}

func TestRecordStateChangeDefaultSource(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))
	ctx := context.Background()

	if err := repo.RecordStateChange(ctx, "light-test", DefaultState(), ""); err != nil {
		t.Fatalf("RecordStateChange: %v", err)
	}

	entries, err := repo.GetHistory(ctx, "light-test", 1)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Source != StateHistorySourceCommand {
		t.Errorf("source = %q, want default %q", entries[0].Source, StateHistorySourceCommand)
	}
}

func TestGetHistoryLimitClamping(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		state := DefaultState()
		state.Brightness = i % 101
		if err := repo.RecordStateChange(ctx, "light-test", state, StateHistorySourceCommand); err != nil {
			t.Fatalf("RecordStateChange(%d): %v", i, err)
		}
	}

	// Non-positive limit selects the default page size.
	entries, err := repo.GetHistory(ctx, "light-test", 0)
	if err != nil {
		t.Fatalf("GetHistory(0): %v", err)
	}
	if len(entries) != defaultHistoryLimit {
		t.Errorf("got %d entries with limit 0, want default %d", len(entries), defaultHistoryLimit)
	}

	// Oversized limit clamps to the maximum.
	entries, err = repo.GetHistory(ctx, "light-test", 10000)
	if err != nil {
		t.Fatalf("GetHistory(10000): %v", err)
	}
	if len(entries) != 60 {
		t.Errorf("got %d entries with oversized limit, want all 60", len(entries))
	}
}

func TestGetHistoryFiltersByDevice(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))
	ctx := context.Background()

	if err := repo.RecordStateChange(ctx, "light-a", DefaultState(), StateHistorySourceCommand); err != nil {
		t.Fatalf("RecordStateChange: %v", err)
	}
	if err := repo.RecordStateChange(ctx, "light-b", DefaultState(), StateHistorySourceCommand); err != nil {
		t.Fatalf("RecordStateChange: %v", err)
	}

	entries, err := repo.GetHistory(ctx, "light-a", 10)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries for light-a, want 1", len(entries))
	}
	if entries[0].DeviceID != "light-a" {
		t.Errorf("device_id = %q, want %q", entries[0].DeviceID, "light-a")
	}
}

func TestPruneHistory(t *testing.T) {
	repo := NewSQLiteStateHistoryRepository(newHistoryDB(t))
	ctx := context.Background()

	if err := repo.RecordStateChange(ctx, "light-test", DefaultState(), StateHistorySourceCommand); err != nil {
		t.Fatalf("RecordStateChange: %v", err)
	}

	// Cutoff in the past removes nothing.
	n, err := repo.PruneHistory(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PruneHistory: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d rows with past cutoff, want 0", n)
	}

	// Cutoff in the future removes everything.
	n, err = repo.PruneHistory(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PruneHistory: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d rows with future cutoff, want 1", n)
	}
}
