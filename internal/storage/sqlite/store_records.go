package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/storage"
)

var _ storage.RecordStore = (*Store)(nil)

// AppendRecord atomically appends a record and returns it with the sequence
// number set. The record is validated against the registry before any write.
func (s *Store) AppendRecord(ctx context.Context, rec event.Record) (event.Record, error) {
	if err := ctx.Err(); err != nil {
		return event.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return event.Record{}, fmt.Errorf("storage is not configured")
	}

	validated, err := s.registry.ValidateForAppend(rec)
	if err != nil {
		return event.Record{}, err
	}
	rec = validated

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.Timestamp = rec.Timestamp.UTC().Truncate(time.Millisecond)

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return event.Record{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO event_seq (game_id, next_seq) VALUES (?, 1)",
		rec.GameID,
	); err != nil {
		return event.Record{}, fmt.Errorf("init record seq: %w", err)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx,
		"SELECT next_seq FROM event_seq WHERE game_id = ?",
		rec.GameID,
	).Scan(&seq); err != nil {
		return event.Record{}, fmt.Errorf("get record seq: %w", err)
	}
	if seq <= 0 {
		return event.Record{}, fmt.Errorf("record seq is required")
	}
	rec.Seq = uint64(seq)

	if _, err := tx.ExecContext(ctx,
		"UPDATE event_seq SET next_seq = next_seq + 1 WHERE game_id = ?",
		rec.GameID,
	); err != nil {
		return event.Record{}, fmt.Errorf("increment record seq: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO events (game_id, seq, year, season, phase, kind, timestamp, payload_json) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rec.GameID,
		seq,
		rec.Year,
		string(rec.Season),
		string(rec.Phase),
		string(rec.Kind),
		toMillis(rec.Timestamp),
		rec.PayloadJSON,
	); err != nil {
		if isConstraintError(err) {
			return event.Record{}, fmt.Errorf("append record seq conflict: %w", err)
		}
		return event.Record{}, fmt.Errorf("append record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return event.Record{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// GetRecordBySeq retrieves a specific record by sequence number.
func (s *Store) GetRecordBySeq(ctx context.Context, gameID string, seq uint64) (event.Record, error) {
	if err := ctx.Err(); err != nil {
		return event.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return event.Record{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return event.Record{}, fmt.Errorf("game id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT game_id, seq, year, season, phase, kind, timestamp, payload_json FROM events WHERE game_id = ? AND seq = ?",
		gameID, int64(seq),
	)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return event.Record{}, storage.ErrNotFound
		}
		return event.Record{}, fmt.Errorf("get record by seq: %w", err)
	}
	return rec, nil
}

// ListRecords returns records ordered by sequence ascending.
func (s *Store) ListRecords(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return nil, fmt.Errorf("game id is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT game_id, seq, year, season, phase, kind, timestamp, payload_json FROM events WHERE game_id = ? AND seq > ? ORDER BY seq ASC LIMIT ?",
		gameID, int64(afterSeq), int64(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListRecordsByTurn returns the records stamped with one game turn.
func (s *Store) ListRecordsByTurn(ctx context.Context, gameID string, year int, season event.Season, phase event.Phase) ([]event.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return nil, fmt.Errorf("game id is required")
	}
	if year <= 0 {
		return nil, fmt.Errorf("year must be positive")
	}
	if !season.Valid() {
		return nil, fmt.Errorf("unknown season %q", season)
	}
	if !phase.Valid() {
		return nil, fmt.Errorf("unknown phase %q", phase)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT game_id, seq, year, season, phase, kind, timestamp, payload_json FROM events WHERE game_id = ? AND year = ? AND season = ? AND phase = ? ORDER BY seq ASC",
		gameID, year, string(season), string(phase),
	)
	if err != nil {
		return nil, fmt.Errorf("list records by turn: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetLatestSeq returns the latest record sequence number for a game.
func (s *Store) GetLatestSeq(ctx context.Context, gameID string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return 0, fmt.Errorf("game id is required")
	}

	var seq sql.NullInt64
	if err := s.sqlDB.QueryRowContext(ctx,
		"SELECT MAX(seq) FROM events WHERE game_id = ?",
		gameID,
	).Scan(&seq); err != nil {
		return 0, fmt.Errorf("get latest seq: %w", err)
	}
	if !seq.Valid {
		return 0, nil
	}
	return uint64(seq.Int64), nil
}

// DeleteGameRecords removes every record and the seq counter for a game.
func (s *Store) DeleteGameRecords(ctx context.Context, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return fmt.Errorf("game id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("delete game records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM event_seq WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("delete game seq counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (event.Record, error) {
	var (
		gameID      string
		seq         int64
		year        int64
		season      string
		phase       string
		kind        string
		timestamp   int64
		payloadJSON []byte
	)
	if err := row.Scan(&gameID, &seq, &year, &season, &phase, &kind, &timestamp, &payloadJSON); err != nil {
		return event.Record{}, err
	}
	return event.Record{
		GameID:      gameID,
		Seq:         uint64(seq),
		Year:        int(year),
		Season:      event.Season(season),
		Phase:       event.Phase(phase),
		Kind:        event.Kind(kind),
		Timestamp:   fromMillis(timestamp),
		PayloadJSON: payloadJSON,
	}, nil
}

func collectRecords(rows *sql.Rows) ([]event.Record, error) {
	var records []event.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
