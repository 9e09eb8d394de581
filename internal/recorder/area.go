package recorder

import (
	"context"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

// Standoff records a standoff in a contested area.
func (r *Recorder) Standoff(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	game, err := areaGame(a)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.StandoffPayload{
		Area: a.Area(),
	})
}

// Control records a change of control over an area. Controller is empty when
// the area reverts to neutral.
func (r *Recorder) Control(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	game, err := areaGame(a)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.ControlPayload{
		Country: a.Controller(),
		Area:    a.Area(),
	})
}

// disaster is the shared path for the four disaster-marker triggers.
func (r *Recorder) disaster(ctx context.Context, a trigger.GameArea, message event.DisasterMessage) (event.Record, error) {
	game, err := areaGame(a)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.DisasterPayload{
		Area:    a.Area(),
		Message: message,
	})
}

// FamineMarker records a famine marker placed on a province.
func (r *Recorder) FamineMarker(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	return r.disaster(ctx, a, event.DisasterFamine)
}

// Plague records a plague outbreak in a province.
func (r *Recorder) Plague(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	return r.disaster(ctx, a, event.DisasterPlague)
}

// Rebellion records a rebellion breaking out in a province.
func (r *Recorder) Rebellion(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	return r.disaster(ctx, a, event.DisasterRebellion)
}

// StormMarker records a storm marker placed on a sea area.
func (r *Recorder) StormMarker(ctx context.Context, a trigger.GameArea) (event.Record, error) {
	return r.disaster(ctx, a, event.DisasterStorm)
}

// DisasterNotice records an engine-side disaster carrying its own message.
func (r *Recorder) DisasterNotice(ctx context.Context, n trigger.DisasterNotice) (event.Record, error) {
	if n == nil {
		return event.Record{}, malformed("sender must be a disaster notice")
	}
	game := n.Game()
	if game == nil {
		return event.Record{}, malformed("disaster notice has no owning game")
	}
	if n.Area() == "" {
		return event.Record{}, malformed("disaster notice has no board area")
	}
	return r.append(ctx, game, event.DisasterPayload{
		Area:    n.Area(),
		Message: n.Message(),
	})
}
