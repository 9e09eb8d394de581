package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/storage"
)

func TestAppendRecordAssignsSequentialSeq(t *testing.T) {
	store := openTestStore(t)

	for want := uint64(1); want <= 3; want++ {
		stored := mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"}))
		if stored.Seq != want {
			t.Fatalf("seq = %d, want %d", stored.Seq, want)
		}
	}
}

func TestAppendRecordSeqIsPerGame(t *testing.T) {
	store := openTestStore(t)

	mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"}))
	mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "pisa"}))
	stored := mustAppend(t, store, testRecord(t, "game-2", event.StandoffPayload{Area: "bari"}))

	if stored.Seq != 1 {
		t.Fatalf("seq = %d, want 1 for a fresh game", stored.Seq)
	}
}

func TestAppendRecordRejectsInvalidRecord(t *testing.T) {
	store := openTestStore(t)

	rec := testRecord(t, "game-1", event.StandoffPayload{Area: "rome"})
	rec.Season = "winter"
	if _, err := store.AppendRecord(context.Background(), rec); !errors.Is(err,
		apperrors.New(apperrors.CodeInvalidHeader, "")) {
		t.Fatalf("err = %v, want invalid header", err)
	}

	rec = testRecord(t, "game-1", event.NewUnitPayload{UnitType: event.UnitArmy, Area: "venice"})
	if _, err := store.AppendRecord(context.Background(), rec); !errors.Is(err,
		apperrors.New(apperrors.CodeInvalidPayload, "")) {
		t.Fatalf("err = %v, want invalid payload", err)
	}

	// A rejected append leaves no trace.
	seq, err := store.GetLatestSeq(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("get latest seq: %v", err)
	}
	if seq != 0 {
		t.Fatalf("latest seq = %d, want 0 after rejected appends", seq)
	}
}

func TestAppendRecordStampsTimestamp(t *testing.T) {
	store := openTestStore(t)

	before := time.Now().UTC().Add(-time.Second)
	stored := mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"}))
	after := time.Now().UTC().Add(time.Second)

	if stored.Timestamp.Before(before) || stored.Timestamp.After(after) {
		t.Fatalf("timestamp %v outside [%v, %v]", stored.Timestamp, before, after)
	}

	fetched, err := store.GetRecordBySeq(context.Background(), "game-1", stored.Seq)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if !fetched.Timestamp.Equal(stored.Timestamp) {
		t.Fatalf("persisted timestamp = %v, want %v", fetched.Timestamp, stored.Timestamp)
	}
}

func TestGetRecordBySeqRoundTrips(t *testing.T) {
	store := openTestStore(t)

	stored := mustAppend(t, store, testRecord(t, "game-1", event.IncomePayload{Country: "Venice", Ducats: 12}))

	fetched, err := store.GetRecordBySeq(context.Background(), "game-1", stored.Seq)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if fetched.GameID != "game-1" || fetched.Seq != stored.Seq {
		t.Fatalf("fetched %s/%d, want game-1/%d", fetched.GameID, fetched.Seq, stored.Seq)
	}
	if fetched.Year != 1454 || fetched.Season != event.SeasonSpring || fetched.Phase != event.PhaseOrderWriting {
		t.Fatalf("header = %d/%s/%s", fetched.Year, fetched.Season, fetched.Phase)
	}
	if fetched.Kind != event.KindIncome {
		t.Fatalf("kind = %q, want %q", fetched.Kind, event.KindIncome)
	}

	payload, err := event.DecodePayload(fetched)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	income, ok := payload.(event.IncomePayload)
	if !ok {
		t.Fatalf("payload type = %T", payload)
	}
	if income.Country != "Venice" || income.Ducats != 12 {
		t.Fatalf("payload = %+v", income)
	}
}

func TestGetRecordBySeqNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetRecordBySeq(context.Background(), "game-1", 99)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListRecordsPagination(t *testing.T) {
	store := openTestStore(t)

	areas := []string{"rome", "pisa", "bari", "milan", "padua"}
	for _, area := range areas {
		mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: area}))
	}

	page, err := store.ListRecords(context.Background(), "game-1", 0, 3)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("page size = %d, want 3", len(page))
	}
	for i, rec := range page {
		if rec.Seq != uint64(i+1) {
			t.Fatalf("page[%d].Seq = %d, want %d", i, rec.Seq, i+1)
		}
	}

	rest, err := store.ListRecords(context.Background(), "game-1", page[len(page)-1].Seq, 10)
	if err != nil {
		t.Fatalf("list rest: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("rest size = %d, want 2", len(rest))
	}
	if rest[0].Seq != 4 || rest[1].Seq != 5 {
		t.Fatalf("rest seqs = %d, %d", rest[0].Seq, rest[1].Seq)
	}
}

func TestListRecordsRequiresPositiveLimit(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.ListRecords(context.Background(), "game-1", 0, 0); err == nil {
		t.Fatal("expected limit error")
	}
}

func TestListRecordsByTurn(t *testing.T) {
	store := openTestStore(t)

	spring := testRecord(t, "game-1", event.StandoffPayload{Area: "rome"})
	mustAppend(t, store, spring)

	summer := testRecord(t, "game-1", event.StandoffPayload{Area: "pisa"})
	summer.Season = event.SeasonSummer
	mustAppend(t, store, summer)

	later := testRecord(t, "game-1", event.StandoffPayload{Area: "bari"})
	later.Year = 1455
	mustAppend(t, store, later)

	records, err := store.ListRecordsByTurn(context.Background(), "game-1",
		1454, event.SeasonSpring, event.PhaseOrderWriting)
	if err != nil {
		t.Fatalf("list by turn: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Seq != 1 {
		t.Fatalf("seq = %d, want 1", records[0].Seq)
	}
}

func TestGetLatestSeq(t *testing.T) {
	store := openTestStore(t)

	seq, err := store.GetLatestSeq(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("get latest seq: %v", err)
	}
	if seq != 0 {
		t.Fatalf("latest seq = %d, want 0 for empty log", seq)
	}

	mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"}))
	mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "pisa"}))

	seq, err = store.GetLatestSeq(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("get latest seq: %v", err)
	}
	if seq != 2 {
		t.Fatalf("latest seq = %d, want 2", seq)
	}
}

func TestDeleteGameRecords(t *testing.T) {
	store := openTestStore(t)

	mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"}))
	mustAppend(t, store, testRecord(t, "game-2", event.StandoffPayload{Area: "pisa"}))

	if err := store.DeleteGameRecords(context.Background(), "game-1"); err != nil {
		t.Fatalf("delete game records: %v", err)
	}

	seq, err := store.GetLatestSeq(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("get latest seq: %v", err)
	}
	if seq != 0 {
		t.Fatalf("latest seq = %d, want 0 after purge", seq)
	}

	// The seq counter resets with the log.
	stored := mustAppend(t, store, testRecord(t, "game-1", event.StandoffPayload{Area: "bari"}))
	if stored.Seq != 1 {
		t.Fatalf("seq = %d, want 1 after purge", stored.Seq)
	}

	// Other games are untouched.
	seq, err = store.GetLatestSeq(context.Background(), "game-2")
	if err != nil {
		t.Fatalf("get latest seq: %v", err)
	}
	if seq != 1 {
		t.Fatalf("game-2 latest seq = %d, want 1", seq)
	}
}

func TestAppendRecordHonorsContextCancellation(t *testing.T) {
	store := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.AppendRecord(ctx, testRecord(t, "game-1", event.StandoffPayload{Area: "rome"})); err == nil {
		t.Fatal("expected context error")
	}
}
