// Package storage defines the persistence contract for the game event log.
package storage

import (
	"context"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
	"github.com/jonmarkgo/condottieri-events/internal/event"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// RecordStore is the append-only store for game event records.
//
// Appends are individually atomic; no ordering is guaranteed between records
// of the same turn beyond the insertion-order sequence number, which callers
// may use only as a tie-break.
type RecordStore interface {
	// AppendRecord validates rec, assigns the next per-game sequence
	// number, and durably appends exactly one row. It returns the stored
	// record.
	AppendRecord(ctx context.Context, rec event.Record) (event.Record, error)

	// GetRecordBySeq retrieves one record by game and sequence number.
	GetRecordBySeq(ctx context.Context, gameID string, seq uint64) (event.Record, error)

	// ListRecords returns records for a game ordered by sequence ascending,
	// starting after afterSeq, at most limit rows.
	ListRecords(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Record, error)

	// ListRecordsByTurn returns the records stamped with one game turn,
	// ordered by sequence ascending.
	ListRecordsByTurn(ctx context.Context, gameID string, year int, season event.Season, phase event.Phase) ([]event.Record, error)

	// GetLatestSeq returns the highest sequence number appended for a game,
	// or zero when the game has no records.
	GetLatestSeq(ctx context.Context, gameID string) (uint64, error)

	// DeleteGameRecords removes every record and the sequence counter for a
	// game. Records are otherwise immutable; this is the cascade path for
	// deleting a finished game.
	DeleteGameRecords(ctx context.Context, gameID string) error
}
