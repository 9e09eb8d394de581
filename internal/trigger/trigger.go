// Package trigger declares the sender shapes the game engine hands to the
// recorder. The interfaces are owned by this subsystem and implemented by the
// engine, so the log never imports engine packages.
//
// A method returning a string uses the empty string for "none"; a method
// returning an interface uses nil. The recorder treats a nil sender, or a
// sender whose required sub-objects are missing, as a malformed payload.
package trigger

import "github.com/jonmarkgo/condottieri-events/internal/event"

// Game exposes the temporal context every record is stamped with. The
// recorder reads these at the moment of recording, so a trigger handled after
// the game advanced its phase logs the state reached, not the instant of
// cause.
type Game interface {
	// ID returns the stable game identifier.
	ID() string
	// Year returns the current game year (positive).
	Year() int
	// Season returns the current season.
	Season() event.Season
	// Phase returns the current phase.
	Phase() event.Phase
}

// Unit is a military unit on the board.
type Unit interface {
	// Game returns the game the unit belongs to.
	Game() Game
	// Country returns the owning country name; empty for autonomous
	// garrisons.
	Country() string
	// Type returns the unit type.
	Type() event.UnitType
	// Area returns the board area the unit occupies.
	Area() string
	// Destination returns the board area the unit is moving or retreating
	// to; empty when the unit is not in transit.
	Destination() string
	// Conversion returns the type the unit is converting to; empty when no
	// conversion is underway.
	Conversion() event.UnitType
}

// Order is a confirmed order for a unit. Support and convoy orders reference
// a second unit's order through the Sub methods.
type Order interface {
	// Unit returns the acting unit.
	Unit() Unit
	// Code returns the order code.
	Code() event.OrderCode
	// Destination returns the target board area; empty when the order has
	// none.
	Destination() string
	// Conversion returns the conversion target type; empty when the order
	// has none.
	Conversion() event.UnitType
	// SubUnit returns the supported or convoyed unit; nil when the order
	// references no second unit.
	SubUnit() Unit
	// SubCode returns the referenced unit's order code.
	SubCode() event.OrderSubcode
	// SubDestination returns the referenced order's target area; empty when
	// it has none.
	SubDestination() string
	// SubConversion returns the referenced order's conversion type; empty
	// when it has none.
	SubConversion() event.UnitType
}

// GameArea is a board area in the context of one game.
type GameArea interface {
	// Game returns the game the area belongs to.
	Game() Game
	// Area returns the board area name.
	Area() string
	// Controller returns the controlling country name; empty when the area
	// is neutral.
	Controller() string
}

// Player is a country's seat in one game.
type Player interface {
	// Game returns the game the player belongs to.
	Game() Game
	// Country returns the country the player controls.
	Country() string
}

// Diplomat is a hired diplomat placed in an area.
type Diplomat interface {
	// Player returns the hiring player.
	Player() Player
	// Area returns the board area the diplomat works in.
	Area() string
}

// Expense is a confirmed ducat expenditure.
type Expense interface {
	// Player returns the spending player.
	Player() Player
	// Ducats returns the amount spent (non-negative).
	Ducats() int
	// Kind returns what the ducats were spent on.
	Kind() event.ExpenseKind
	// Unit returns the unit the expense targets; nil when the expense has
	// no associated unit.
	Unit() Unit
}

// Revolution is a successful overthrow of a country's player.
type Revolution interface {
	// Game returns the game the revolution happened in.
	Game() Game
	// Country returns the overthrown country.
	Country() string
}

// CountryNotice is an engine-side country condition carrying its own message.
type CountryNotice interface {
	// Game returns the game the notice belongs to.
	Game() Game
	// Country returns the affected country.
	Country() string
	// Message returns the condition to record.
	Message() event.CountryMessage
}

// DisasterNotice is an engine-side disaster marker carrying its own message.
type DisasterNotice interface {
	// Game returns the game the notice belongs to.
	Game() Game
	// Area returns the affected board area.
	Area() string
	// Message returns the disaster to record.
	Message() event.DisasterMessage
}

// IncomeNotice is a country's income collection for a year.
type IncomeNotice interface {
	// Player returns the collecting player.
	Player() Player
	// Ducats returns the collected amount (non-negative).
	Ducats() int
}
