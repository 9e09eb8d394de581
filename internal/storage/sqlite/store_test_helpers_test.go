package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jonmarkgo/condottieri-events/internal/event"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "events.db")
	store, err := Open(dbPath, event.NewRegistry())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func testRecord(t *testing.T, gameID string, payload event.Payload) event.Record {
	t.Helper()

	data, err := event.EncodePayload(payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return event.Record{
		GameID:      gameID,
		Year:        1454,
		Season:      event.SeasonSpring,
		Phase:       event.PhaseOrderWriting,
		Kind:        payload.Kind(),
		PayloadJSON: data,
	}
}

func mustAppend(t *testing.T, store *Store, rec event.Record) event.Record {
	t.Helper()

	stored, err := store.AppendRecord(context.Background(), rec)
	if err != nil {
		t.Fatalf("append record: %v", err)
	}
	return stored
}
