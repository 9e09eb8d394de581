package event

import (
	"strings"
	"time"
)

// Kind identifies which schema a stored record uses. The tag is stable across
// releases; renderers and consumers resolve payloads through it.
type Kind string

// Unit events.
const (
	// KindNewUnit records the creation of a unit.
	KindNewUnit Kind = "unit.created"
	// KindDisband records the disbanding of a unit.
	KindDisband Kind = "unit.disbanded"
	// KindConversion records a unit converting between types.
	KindConversion Kind = "unit.converted"
	// KindMovement records a unit advancing into another area.
	KindMovement Kind = "unit.moved"
	// KindRetreat records a unit retreating into another area.
	KindRetreat Kind = "unit.retreated"
	// KindUnitNotice records a condition affecting a single unit.
	KindUnitNotice Kind = "unit.notice"
	// KindUncover records a diplomat uncovering a bribed unit.
	KindUncover Kind = "unit.uncovered"
)

// Order events.
const (
	// KindOrder records a confirmed order, including any sub-order.
	KindOrder Kind = "order.confirmed"
)

// Area events.
const (
	// KindStandoff records a standoff in a contested area.
	KindStandoff Kind = "area.standoff"
	// KindControl records a change of control over an area.
	KindControl Kind = "area.control_changed"
	// KindDisaster records a famine, plague, rebellion, or storm marker.
	KindDisaster Kind = "area.disaster"
)

// Country events.
const (
	// KindCountryNotice records a condition affecting a whole country.
	KindCountryNotice Kind = "country.notice"
	// KindIncome records a country collecting ducats.
	KindIncome Kind = "country.income"
	// KindExpense records a country spending ducats.
	KindExpense Kind = "country.expense"
)

// IsValid reports whether the kind tag is usable.
func (k Kind) IsValid() bool {
	return strings.TrimSpace(string(k)) != ""
}

// Domain returns the domain prefix of the kind (e.g. "unit", "country").
func (k Kind) Domain() string {
	for i, c := range k {
		if c == '.' {
			return string(k[:i])
		}
	}
	return string(k)
}

// Record is one immutable row in a game's event log.
//
// The temporal header (GameID, Year, Season, Phase) is stamped from the game's
// current state at the moment of recording and never updated afterwards.
type Record struct {
	// GameID is the game this record belongs to.
	GameID string
	// Seq is the record sequence number within the game (starts at 1).
	// Assigned by storage on append; consumers may use it only as an
	// insertion-order tie-break within a turn.
	Seq uint64
	// Year is the game year (positive).
	Year int
	// Season is the game season at recording time.
	Season Season
	// Phase is the game phase at recording time.
	Phase Phase
	// Kind identifies which payload schema the record uses.
	Kind Kind
	// Timestamp is the wall-clock time the record was appended.
	Timestamp time.Time
	// PayloadJSON holds the kind-specific fields as JSON.
	PayloadJSON []byte
}
