package recorder

import (
	"context"
	"errors"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

type fakeGame struct {
	id     string
	year   int
	season event.Season
	phase  event.Phase
}

func (g *fakeGame) ID() string           { return g.id }
func (g *fakeGame) Year() int            { return g.year }
func (g *fakeGame) Season() event.Season { return g.season }
func (g *fakeGame) Phase() event.Phase   { return g.phase }

type fakeUnit struct {
	game        *fakeGame
	country     string
	unitType    event.UnitType
	area        string
	destination string
	conversion  event.UnitType
}

func (u *fakeUnit) Game() trigger.Game {
	if u.game == nil {
		return nil
	}
	return u.game
}
func (u *fakeUnit) Country() string            { return u.country }
func (u *fakeUnit) Type() event.UnitType       { return u.unitType }
func (u *fakeUnit) Area() string               { return u.area }
func (u *fakeUnit) Destination() string        { return u.destination }
func (u *fakeUnit) Conversion() event.UnitType { return u.conversion }

type fakeOrder struct {
	unit           *fakeUnit
	code           event.OrderCode
	destination    string
	conversion     event.UnitType
	subUnit        *fakeUnit
	subCode        event.OrderSubcode
	subDestination string
	subConversion  event.UnitType
}

func (o *fakeOrder) Unit() trigger.Unit {
	if o.unit == nil {
		return nil
	}
	return o.unit
}
func (o *fakeOrder) Code() event.OrderCode      { return o.code }
func (o *fakeOrder) Destination() string        { return o.destination }
func (o *fakeOrder) Conversion() event.UnitType { return o.conversion }
func (o *fakeOrder) SubUnit() trigger.Unit {
	if o.subUnit == nil {
		return nil
	}
	return o.subUnit
}
func (o *fakeOrder) SubCode() event.OrderSubcode   { return o.subCode }
func (o *fakeOrder) SubDestination() string        { return o.subDestination }
func (o *fakeOrder) SubConversion() event.UnitType { return o.subConversion }

type fakeArea struct {
	game       *fakeGame
	area       string
	controller string
}

func (a *fakeArea) Game() trigger.Game {
	if a.game == nil {
		return nil
	}
	return a.game
}
func (a *fakeArea) Area() string       { return a.area }
func (a *fakeArea) Controller() string { return a.controller }

type fakePlayer struct {
	game    *fakeGame
	country string
}

func (p *fakePlayer) Game() trigger.Game {
	if p.game == nil {
		return nil
	}
	return p.game
}
func (p *fakePlayer) Country() string { return p.country }

type fakeDiplomat struct {
	player *fakePlayer
	area   string
}

func (d *fakeDiplomat) Player() trigger.Player {
	if d.player == nil {
		return nil
	}
	return d.player
}
func (d *fakeDiplomat) Area() string { return d.area }

type fakeExpense struct {
	player *fakePlayer
	ducats int
	kind   event.ExpenseKind
	unit   *fakeUnit
}

func (e *fakeExpense) Player() trigger.Player {
	if e.player == nil {
		return nil
	}
	return e.player
}
func (e *fakeExpense) Ducats() int             { return e.ducats }
func (e *fakeExpense) Kind() event.ExpenseKind { return e.kind }
func (e *fakeExpense) Unit() trigger.Unit {
	if e.unit == nil {
		return nil
	}
	return e.unit
}

type fakeRevolution struct {
	game    *fakeGame
	country string
}

func (r *fakeRevolution) Game() trigger.Game {
	if r.game == nil {
		return nil
	}
	return r.game
}
func (r *fakeRevolution) Country() string { return r.country }

type fakeCountryNotice struct {
	game    *fakeGame
	country string
	message event.CountryMessage
}

func (n *fakeCountryNotice) Game() trigger.Game {
	if n.game == nil {
		return nil
	}
	return n.game
}
func (n *fakeCountryNotice) Country() string               { return n.country }
func (n *fakeCountryNotice) Message() event.CountryMessage { return n.message }

type fakeDisasterNotice struct {
	game    *fakeGame
	area    string
	message event.DisasterMessage
}

func (n *fakeDisasterNotice) Game() trigger.Game {
	if n.game == nil {
		return nil
	}
	return n.game
}
func (n *fakeDisasterNotice) Area() string                   { return n.area }
func (n *fakeDisasterNotice) Message() event.DisasterMessage { return n.message }

type fakeIncomeNotice struct {
	player *fakePlayer
	ducats int
}

func (n *fakeIncomeNotice) Player() trigger.Player {
	if n.player == nil {
		return nil
	}
	return n.player
}
func (n *fakeIncomeNotice) Ducats() int { return n.ducats }

// failingStore rejects every write with a non-domain error.
type failingStore struct{}

func (failingStore) AppendRecord(ctx context.Context, rec event.Record) (event.Record, error) {
	return event.Record{}, errors.New("disk full")
}

func (failingStore) GetRecordBySeq(ctx context.Context, gameID string, seq uint64) (event.Record, error) {
	return event.Record{}, errors.New("disk full")
}

func (failingStore) ListRecords(ctx context.Context, gameID string, afterSeq uint64, limit int) ([]event.Record, error) {
	return nil, errors.New("disk full")
}

func (failingStore) ListRecordsByTurn(ctx context.Context, gameID string, year int, season event.Season, phase event.Phase) ([]event.Record, error) {
	return nil, errors.New("disk full")
}

func (failingStore) GetLatestSeq(ctx context.Context, gameID string) (uint64, error) {
	return 0, errors.New("disk full")
}

func (failingStore) DeleteGameRecords(ctx context.Context, gameID string) error {
	return errors.New("disk full")
}
