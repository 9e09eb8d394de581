package recorder

import (
	"context"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

// Overthrow records a country's player being overthrown by a revolution.
func (r *Recorder) Overthrow(ctx context.Context, rev trigger.Revolution) (event.Record, error) {
	if rev == nil {
		return event.Record{}, malformed("sender must be a revolution")
	}
	game := rev.Game()
	if game == nil {
		return event.Record{}, malformed("revolution has no owning game")
	}
	if rev.Country() == "" {
		return event.Record{}, malformed("revolution has no country")
	}
	return r.append(ctx, game, event.CountryNoticePayload{
		Country: rev.Country(),
		Message: event.CountryOverthrown,
	})
}

// countryNotice is the shared path for the player-sent country triggers.
func (r *Recorder) countryNotice(ctx context.Context, p trigger.Player, message event.CountryMessage) (event.Record, error) {
	game, err := playerGame(p)
	if err != nil {
		return event.Record{}, err
	}
	return r.append(ctx, game, event.CountryNoticePayload{
		Country: p.Country(),
		Message: message,
	})
}

// Conquering records a country being conquered.
func (r *Recorder) Conquering(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryConquered)
}

// Excommunication records a country being excommunicated.
func (r *Recorder) Excommunication(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryExcommunicated)
}

// Elimination records a country being eliminated from the game.
func (r *Recorder) Elimination(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryEliminated)
}

// Assassination records a country's leader being assassinated.
func (r *Recorder) Assassination(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryAssassinated)
}

// LiftedExcommunication records a country's excommunication being lifted.
func (r *Recorder) LiftedExcommunication(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryForgiven)
}

// AssassinationAttempt records a failed assassination attempt on a country's
// leader.
func (r *Recorder) AssassinationAttempt(ctx context.Context, p trigger.Player) (event.Record, error) {
	return r.countryNotice(ctx, p, event.CountryAssassinationAttempt)
}

// CountryNotice records an engine-side country condition carrying its own
// message.
func (r *Recorder) CountryNotice(ctx context.Context, n trigger.CountryNotice) (event.Record, error) {
	if n == nil {
		return event.Record{}, malformed("sender must be a country notice")
	}
	game := n.Game()
	if game == nil {
		return event.Record{}, malformed("country notice has no owning game")
	}
	if n.Country() == "" {
		return event.Record{}, malformed("country notice has no country")
	}
	return r.append(ctx, game, event.CountryNoticePayload{
		Country: n.Country(),
		Message: n.Message(),
	})
}

// Income records a country collecting its yearly ducats.
func (r *Recorder) Income(ctx context.Context, n trigger.IncomeNotice) (event.Record, error) {
	if n == nil {
		return event.Record{}, malformed("sender must be an income notice")
	}
	game, err := playerGame(n.Player())
	if err != nil {
		return event.Record{}, err
	}
	if n.Ducats() < 0 {
		return event.Record{}, malformed("income ducats must be non-negative")
	}
	return r.append(ctx, game, event.IncomePayload{
		Country: n.Player().Country(),
		Ducats:  n.Ducats(),
	})
}

// Expense records a country spending ducats. When the expense has no
// associated unit, the unit-dependent fields resolve to "none" as a pair.
func (r *Recorder) Expense(ctx context.Context, e trigger.Expense) (event.Record, error) {
	if e == nil {
		return event.Record{}, malformed("sender must be an expense")
	}
	game, err := playerGame(e.Player())
	if err != nil {
		return event.Record{}, err
	}
	if e.Ducats() < 0 {
		return event.Record{}, malformed("expense ducats must be non-negative")
	}

	payload := event.ExpensePayload{
		Country:     e.Player().Country(),
		Ducats:      e.Ducats(),
		ExpenseKind: e.Kind(),
	}
	if unit := e.Unit(); unit != nil && unit.Area() != "" {
		payload.Area = unit.Area()
		payload.UnitType = unit.Type()
	}

	return r.append(ctx, game, payload)
}
