// Package recorder binds game-engine triggers to the event log. Each exported
// method is the handler for one trigger kind: it validates the sender shape,
// derives the matching payload, stamps the temporal header from the game's
// current state, and appends exactly one record.
//
// A handler runs synchronously inside the causing action. Failures surface to
// the caller: a malformed sender is an integration bug in the engine, and a
// rejected write is never retried or silently dropped.
package recorder

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/storage"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

// ErrMalformedTriggerPayload matches (via errors.Is) every failure caused by
// a sender object lacking the shape its trigger requires.
var ErrMalformedTriggerPayload = apperrors.New(
	apperrors.CodeMalformedTriggerPayload, "malformed trigger payload")

// ErrPersistenceFailure matches (via errors.Is) every failure caused by the
// store rejecting a write.
var ErrPersistenceFailure = apperrors.New(
	apperrors.CodePersistenceFailure, "persistence failure")

// Recorder appends event records for completed game actions.
type Recorder struct {
	store  storage.RecordStore
	tracer trace.Tracer
}

// New creates a recorder over the provided store.
func New(store storage.RecordStore) *Recorder {
	return &Recorder{
		store:  store,
		tracer: otel.Tracer("condottieri-events/recorder"),
	}
}

// append stamps the temporal header from the game's state at this moment and
// writes one record. Every header and payload field comes from the sender
// objects, so a registry rejection means the sender shape was bad and
// surfaces as a malformed trigger payload; anything else from the store is a
// persistence failure.
func (r *Recorder) append(ctx context.Context, game trigger.Game, payload event.Payload) (event.Record, error) {
	data, err := event.EncodePayload(payload)
	if err != nil {
		return event.Record{}, err
	}

	rec := event.Record{
		GameID:      game.ID(),
		Year:        game.Year(),
		Season:      game.Season(),
		Phase:       game.Phase(),
		Kind:        payload.Kind(),
		PayloadJSON: data,
	}

	ctx, span := r.tracer.Start(ctx, "recorder.append",
		trace.WithAttributes(
			attribute.String("game.id", rec.GameID),
			attribute.String("event.kind", string(rec.Kind)),
		))
	defer span.End()

	stored, err := r.store.AppendRecord(ctx, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append record")
		return event.Record{}, classifyAppendError(rec.Kind, err)
	}
	return stored, nil
}

func classifyAppendError(kind event.Kind, err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case apperrors.CodeInvalidHeader, apperrors.CodeInvalidPayload, apperrors.CodeUnknownKind:
			return apperrors.Wrap(apperrors.CodeMalformedTriggerPayload,
				fmt.Sprintf("invalid %s record", kind), err)
		}
		return err
	}
	return apperrors.Wrap(apperrors.CodePersistenceFailure,
		fmt.Sprintf("append %s record", kind), err)
}

func malformed(message string) error {
	return apperrors.New(apperrors.CodeMalformedTriggerPayload, message)
}

// unitGame validates the shape shared by every unit-sent trigger and returns
// the owning game.
func unitGame(u trigger.Unit) (trigger.Game, error) {
	if u == nil {
		return nil, malformed("sender must be a unit")
	}
	game := u.Game()
	if game == nil {
		return nil, malformed("unit has no owning game")
	}
	if u.Area() == "" {
		return nil, malformed("unit has no board area")
	}
	return game, nil
}

// playerGame validates the shape shared by every player-sent trigger and
// returns the owning game.
func playerGame(p trigger.Player) (trigger.Game, error) {
	if p == nil {
		return nil, malformed("sender must be a player")
	}
	game := p.Game()
	if game == nil {
		return nil, malformed("player has no owning game")
	}
	if p.Country() == "" {
		return nil, malformed("player has no country")
	}
	return game, nil
}

// areaGame validates the shape shared by every area-sent trigger and returns
// the owning game.
func areaGame(a trigger.GameArea) (trigger.Game, error) {
	if a == nil {
		return nil, malformed("sender must be a game area")
	}
	game := a.Game()
	if game == nil {
		return nil, malformed("game area has no owning game")
	}
	if a.Area() == "" {
		return nil, malformed("game area has no board area")
	}
	return game, nil
}
