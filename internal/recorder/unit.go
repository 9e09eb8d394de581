package recorder

import (
	"context"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

// NewUnit records the creation of a unit.
func (r *Recorder) NewUnit(ctx context.Context, u trigger.Unit) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	if u.Country() == "" {
		return event.Record{}, malformed("new unit has no owning country")
	}
	return r.append(ctx, game, event.NewUnitPayload{
		Country:  u.Country(),
		UnitType: u.Type(),
		Area:     u.Area(),
	})
}

// Disband records the disbanding of a unit. Country is empty for autonomous
// garrisons.
func (r *Recorder) Disband(ctx context.Context, u trigger.Unit) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.DisbandPayload{
		Country:  u.Country(),
		UnitType: u.Type(),
		Area:     u.Area(),
	})
}

// Conversion records a unit converting between types.
func (r *Recorder) Conversion(ctx context.Context, u trigger.Unit) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	if u.Conversion() == "" {
		return event.Record{}, malformed("unit has no conversion underway")
	}
	return r.append(ctx, game, event.ConversionPayload{
		Country: u.Country(),
		Area:    u.Area(),
		Before:  u.Type(),
		After:   u.Conversion(),
	})
}

// Movement records a unit advancing into its destination area.
func (r *Recorder) Movement(ctx context.Context, u trigger.Unit) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	if u.Destination() == "" {
		return event.Record{}, malformed("moving unit has no destination")
	}
	return r.append(ctx, game, event.MovementPayload{
		Country:     u.Country(),
		UnitType:    u.Type(),
		Origin:      u.Area(),
		Destination: u.Destination(),
	})
}

// Retreat records a unit retreating into its destination area.
func (r *Recorder) Retreat(ctx context.Context, u trigger.Unit) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	if u.Destination() == "" {
		return event.Record{}, malformed("retreating unit has no destination")
	}
	return r.append(ctx, game, event.RetreatPayload{
		Country:     u.Country(),
		UnitType:    u.Type(),
		Origin:      u.Area(),
		Destination: u.Destination(),
	})
}

// unitNotice is the shared path for the six unit-condition triggers.
func (r *Recorder) unitNotice(ctx context.Context, u trigger.Unit, message event.UnitMessage) (event.Record, error) {
	game, err := unitGame(u)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.UnitNoticePayload{
		Country:  u.Country(),
		UnitType: u.Type(),
		Area:     u.Area(),
		Message:  message,
	})
}

// BrokenSupport records that a unit cannot carry out its support order.
func (r *Recorder) BrokenSupport(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitCannotSupport)
}

// ForcedRetreat records that a unit must retreat.
func (r *Recorder) ForcedRetreat(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitMustRetreat)
}

// Surrender records that a besieged unit surrenders.
func (r *Recorder) Surrender(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitSurrenders)
}

// SiegeStart records that a unit starts a siege.
func (r *Recorder) SiegeStart(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitBesieges)
}

// ChangeCountry records that a bribed unit changes country.
func (r *Recorder) ChangeCountry(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitChangesCountry)
}

// ToAutonomous records that a garrison becomes autonomous.
func (r *Recorder) ToAutonomous(ctx context.Context, u trigger.Unit) (event.Record, error) {
	return r.unitNotice(ctx, u, event.UnitBecomesAutonomous)
}

// Uncover records a diplomat uncovering a bribed unit in their area.
func (r *Recorder) Uncover(ctx context.Context, d trigger.Diplomat) (event.Record, error) {
	if d == nil {
		return event.Record{}, malformed("sender must be a diplomat")
	}
	game, err := playerGame(d.Player())
	if err != nil {
		return event.Record{}, err
	}
	if d.Area() == "" {
		return event.Record{}, malformed("diplomat has no board area")
	}
	return r.append(ctx, game, event.UncoverPayload{
		Country: d.Player().Country(),
		Area:    d.Area(),
	})
}
