package event

// Season identifies the game season a record was stamped with.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// Seasons returns the legal season values in play order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall}
}

// Valid reports whether the season is a known value.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall:
		return true
	}
	return false
}

// Phase identifies the game phase a record was stamped with.
type Phase string

const (
	PhaseInactive            Phase = "inactive"
	PhaseMilitaryAdjustments Phase = "military_adjustments"
	PhaseOrderWriting        Phase = "order_writing"
	PhaseRetreats            Phase = "retreats"
	PhaseStrategicMovement   Phase = "strategic_movement"
)

// Phases returns the legal phase values in turn order.
func Phases() []Phase {
	return []Phase{
		PhaseInactive,
		PhaseMilitaryAdjustments,
		PhaseOrderWriting,
		PhaseRetreats,
		PhaseStrategicMovement,
	}
}

// Valid reports whether the phase is a known value.
func (p Phase) Valid() bool {
	switch p {
	case PhaseInactive, PhaseMilitaryAdjustments, PhaseOrderWriting,
		PhaseRetreats, PhaseStrategicMovement:
		return true
	}
	return false
}

// UnitType identifies a military unit type. The single-letter tags are the
// stable identifiers the board notation uses.
type UnitType string

const (
	UnitArmy     UnitType = "A"
	UnitFleet    UnitType = "F"
	UnitGarrison UnitType = "G"
)

// UnitTypes returns the legal unit type values.
func UnitTypes() []UnitType {
	return []UnitType{UnitArmy, UnitFleet, UnitGarrison}
}

// Valid reports whether the unit type is a known value.
func (t UnitType) Valid() bool {
	switch t {
	case UnitArmy, UnitFleet, UnitGarrison:
		return true
	}
	return false
}

// OrderCode identifies the order written for a unit.
type OrderCode string

const (
	OrderHold       OrderCode = "H"
	OrderBesiege    OrderCode = "B"
	OrderAdvance    OrderCode = "-"
	OrderConversion OrderCode = "="
	OrderConvoy     OrderCode = "C"
	OrderSupport    OrderCode = "S"
)

// OrderCodes returns the legal order code values.
func OrderCodes() []OrderCode {
	return []OrderCode{
		OrderHold, OrderBesiege, OrderAdvance,
		OrderConversion, OrderConvoy, OrderSupport,
	}
}

// Valid reports whether the order code is a known value.
func (c OrderCode) Valid() bool {
	switch c {
	case OrderHold, OrderBesiege, OrderAdvance,
		OrderConversion, OrderConvoy, OrderSupport:
		return true
	}
	return false
}

// OrderSubcode identifies the supported unit's order in a support or convoy
// order. Only hold, advance, and conversion can be supported.
type OrderSubcode string

const (
	SubcodeHold       OrderSubcode = "H"
	SubcodeAdvance    OrderSubcode = "-"
	SubcodeConversion OrderSubcode = "="
)

// OrderSubcodes returns the legal order subcode values.
func OrderSubcodes() []OrderSubcode {
	return []OrderSubcode{SubcodeHold, SubcodeAdvance, SubcodeConversion}
}

// Valid reports whether the order subcode is a known value.
func (c OrderSubcode) Valid() bool {
	switch c {
	case SubcodeHold, SubcodeAdvance, SubcodeConversion:
		return true
	}
	return false
}

// UnitMessage identifies the condition recorded by a unit notice.
type UnitMessage string

const (
	UnitCannotSupport     UnitMessage = "cannot_support"
	UnitMustRetreat       UnitMessage = "must_retreat"
	UnitSurrenders        UnitMessage = "surrenders"
	UnitBesieges          UnitMessage = "besieges"
	UnitChangesCountry    UnitMessage = "changes_country"
	UnitBecomesAutonomous UnitMessage = "becomes_autonomous"
)

// UnitMessages returns the legal unit notice messages.
func UnitMessages() []UnitMessage {
	return []UnitMessage{
		UnitCannotSupport, UnitMustRetreat, UnitSurrenders,
		UnitBesieges, UnitChangesCountry, UnitBecomesAutonomous,
	}
}

// Valid reports whether the unit message is a known value.
func (m UnitMessage) Valid() bool {
	switch m {
	case UnitCannotSupport, UnitMustRetreat, UnitSurrenders,
		UnitBesieges, UnitChangesCountry, UnitBecomesAutonomous:
		return true
	}
	return false
}

// CountryMessage identifies the condition recorded by a country notice.
type CountryMessage string

const (
	CountryOverthrown           CountryMessage = "overthrown"
	CountryConquered            CountryMessage = "conquered"
	CountryExcommunicated       CountryMessage = "excommunicated"
	CountryEliminated           CountryMessage = "eliminated"
	CountryAssassinated         CountryMessage = "assassinated"
	CountryForgiven             CountryMessage = "forgiven"
	CountryAssassinationAttempt CountryMessage = "assassination_attempted"
)

// CountryMessages returns the legal country notice messages.
func CountryMessages() []CountryMessage {
	return []CountryMessage{
		CountryOverthrown, CountryConquered, CountryExcommunicated,
		CountryEliminated, CountryAssassinated, CountryForgiven,
		CountryAssassinationAttempt,
	}
}

// Valid reports whether the country message is a known value.
func (m CountryMessage) Valid() bool {
	switch m {
	case CountryOverthrown, CountryConquered, CountryExcommunicated,
		CountryEliminated, CountryAssassinated, CountryForgiven,
		CountryAssassinationAttempt:
		return true
	}
	return false
}

// DisasterMessage identifies the disaster recorded for a province.
type DisasterMessage string

const (
	DisasterFamine    DisasterMessage = "famine"
	DisasterPlague    DisasterMessage = "plague"
	DisasterRebellion DisasterMessage = "rebellion"
	DisasterStorm     DisasterMessage = "storm"
)

// DisasterMessages returns the legal disaster messages.
func DisasterMessages() []DisasterMessage {
	return []DisasterMessage{
		DisasterFamine, DisasterPlague, DisasterRebellion, DisasterStorm,
	}
}

// Valid reports whether the disaster message is a known value.
func (m DisasterMessage) Valid() bool {
	switch m {
	case DisasterFamine, DisasterPlague, DisasterRebellion, DisasterStorm:
		return true
	}
	return false
}

// ExpenseKind identifies what a country spent ducats on.
type ExpenseKind string

const (
	ExpenseFamineRelief      ExpenseKind = "famine_relief"
	ExpensePacifyRebellion   ExpenseKind = "pacify_rebellion"
	ExpenseRebelConquered    ExpenseKind = "rebel_conquered"
	ExpenseRebelHome         ExpenseKind = "rebel_home"
	ExpenseCounterBribe      ExpenseKind = "counter_bribe"
	ExpenseDisbandAutonomous ExpenseKind = "disband_autonomous"
	ExpenseBuyAutonomous     ExpenseKind = "buy_autonomous"
	ExpenseConvertGarrison   ExpenseKind = "convert_garrison"
	ExpenseDisbandEnemy      ExpenseKind = "disband_enemy"
	ExpenseBuyEnemy          ExpenseKind = "buy_enemy"
	ExpenseDiplomatOwn       ExpenseKind = "diplomat_own"
	ExpenseDiplomatForeign   ExpenseKind = "diplomat_foreign"
)

// ExpenseKinds returns the legal expense kinds.
func ExpenseKinds() []ExpenseKind {
	return []ExpenseKind{
		ExpenseFamineRelief, ExpensePacifyRebellion, ExpenseRebelConquered,
		ExpenseRebelHome, ExpenseCounterBribe, ExpenseDisbandAutonomous,
		ExpenseBuyAutonomous, ExpenseConvertGarrison, ExpenseDisbandEnemy,
		ExpenseBuyEnemy, ExpenseDiplomatOwn, ExpenseDiplomatForeign,
	}
}

// Valid reports whether the expense kind is a known value.
func (k ExpenseKind) Valid() bool {
	switch k {
	case ExpenseFamineRelief, ExpensePacifyRebellion, ExpenseRebelConquered,
		ExpenseRebelHome, ExpenseCounterBribe, ExpenseDisbandAutonomous,
		ExpenseBuyAutonomous, ExpenseConvertGarrison, ExpenseDisbandEnemy,
		ExpenseBuyEnemy, ExpenseDiplomatOwn, ExpenseDiplomatForeign:
		return true
	}
	return false
}
