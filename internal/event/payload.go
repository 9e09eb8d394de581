package event

// Payload is the closed set of kind-specific record bodies. Exactly one
// concrete type exists per Kind; DecodePayload switches over all of them.
//
// Optional reference fields use the empty string as the explicit "none"
// value, so a decoded payload never distinguishes missing from null.
type Payload interface {
	// Kind returns the tag of the schema this payload belongs to.
	Kind() Kind
}

// NewUnitPayload captures the body of unit.created records.
type NewUnitPayload struct {
	Country  string   `json:"country"`
	UnitType UnitType `json:"unit_type"`
	Area     string   `json:"area"`
}

// Kind implements Payload.
func (NewUnitPayload) Kind() Kind { return KindNewUnit }

// DisbandPayload captures the body of unit.disbanded records. Country is
// empty for autonomous garrisons.
type DisbandPayload struct {
	Country  string   `json:"country,omitempty"`
	UnitType UnitType `json:"unit_type"`
	Area     string   `json:"area"`
}

// Kind implements Payload.
func (DisbandPayload) Kind() Kind { return KindDisband }

// OrderPayload captures the body of order.confirmed records.
//
// The Sub* quintet describes the second unit's order when this order supports
// or convoys it. The quintet is populated all-or-nothing: either the order
// referenced a live sub-unit and all five fields are derived, or all five are
// empty.
type OrderPayload struct {
	Country     string    `json:"country"`
	UnitType    UnitType  `json:"unit_type"`
	Origin      string    `json:"origin"`
	Code        OrderCode `json:"code"`
	Destination string    `json:"destination,omitempty"`
	Conversion  UnitType  `json:"conversion,omitempty"`

	SubType        UnitType     `json:"sub_type,omitempty"`
	SubOrigin      string       `json:"sub_origin,omitempty"`
	SubCode        OrderSubcode `json:"sub_code,omitempty"`
	SubDestination string       `json:"sub_destination,omitempty"`
	SubConversion  UnitType     `json:"sub_conversion,omitempty"`
}

// Kind implements Payload.
func (OrderPayload) Kind() Kind { return KindOrder }

// HasSubOrder reports whether the sub-order quintet was recorded.
func (p OrderPayload) HasSubOrder() bool {
	return p.SubType != "" || p.SubOrigin != "" || p.SubCode != "" ||
		p.SubDestination != "" || p.SubConversion != ""
}

// StandoffPayload captures the body of area.standoff records.
type StandoffPayload struct {
	Area string `json:"area"`
}

// Kind implements Payload.
func (StandoffPayload) Kind() Kind { return KindStandoff }

// ConversionPayload captures the body of unit.converted records.
type ConversionPayload struct {
	Country string   `json:"country,omitempty"`
	Area    string   `json:"area"`
	Before  UnitType `json:"before"`
	After   UnitType `json:"after"`
}

// Kind implements Payload.
func (ConversionPayload) Kind() Kind { return KindConversion }

// ControlPayload captures the body of area.control_changed records. Country
// is empty when an area reverts to neutral.
type ControlPayload struct {
	Country string `json:"country,omitempty"`
	Area    string `json:"area"`
}

// Kind implements Payload.
func (ControlPayload) Kind() Kind { return KindControl }

// MovementPayload captures the body of unit.moved records.
type MovementPayload struct {
	Country     string   `json:"country,omitempty"`
	UnitType    UnitType `json:"unit_type"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
}

// Kind implements Payload.
func (MovementPayload) Kind() Kind { return KindMovement }

// RetreatPayload captures the body of unit.retreated records.
type RetreatPayload struct {
	Country     string   `json:"country,omitempty"`
	UnitType    UnitType `json:"unit_type"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
}

// Kind implements Payload.
func (RetreatPayload) Kind() Kind { return KindRetreat }

// UnitNoticePayload captures the body of unit.notice records.
type UnitNoticePayload struct {
	Country  string      `json:"country,omitempty"`
	UnitType UnitType    `json:"unit_type"`
	Area     string      `json:"area"`
	Message  UnitMessage `json:"message"`
}

// Kind implements Payload.
func (UnitNoticePayload) Kind() Kind { return KindUnitNotice }

// CountryNoticePayload captures the body of country.notice records.
type CountryNoticePayload struct {
	Country string         `json:"country"`
	Message CountryMessage `json:"message"`
}

// Kind implements Payload.
func (CountryNoticePayload) Kind() Kind { return KindCountryNotice }

// DisasterPayload captures the body of area.disaster records.
type DisasterPayload struct {
	Area    string          `json:"area"`
	Message DisasterMessage `json:"message"`
}

// Kind implements Payload.
func (DisasterPayload) Kind() Kind { return KindDisaster }

// IncomePayload captures the body of country.income records.
type IncomePayload struct {
	Country string `json:"country"`
	Ducats  int    `json:"ducats"`
}

// Kind implements Payload.
func (IncomePayload) Kind() Kind { return KindIncome }

// ExpensePayload captures the body of country.expense records. Area and
// UnitType are recorded as a pair: both set when the expense targeted a unit,
// both empty otherwise.
type ExpensePayload struct {
	Country     string      `json:"country"`
	Ducats      int         `json:"ducats"`
	ExpenseKind ExpenseKind `json:"expense_kind"`
	Area        string      `json:"area,omitempty"`
	UnitType    UnitType    `json:"unit_type,omitempty"`
}

// Kind implements Payload.
func (ExpensePayload) Kind() Kind { return KindExpense }

// UncoverPayload captures the body of unit.uncovered records.
type UncoverPayload struct {
	Country string `json:"country"`
	Area    string `json:"area"`
}

// Kind implements Payload.
func (UncoverPayload) Kind() Kind { return KindUncover }
