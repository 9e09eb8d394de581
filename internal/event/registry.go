package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
)

// Schema describes one event kind: its payload factory and the legal values
// for every enum-typed payload field.
type Schema struct {
	// Kind is the stable tag stored on every record of this schema.
	Kind Kind
	// EnumFields maps payload JSON field names to their legal values.
	EnumFields map[string][]string

	newPayload func() Payload
}

// NewPayload returns a zero value of the schema's payload type.
func (s Schema) NewPayload() Payload {
	return s.newPayload()
}

// Registry is the closed table of event schemas. It is exhaustive by
// construction: every Kind constant has exactly one entry, and there is no
// runtime registration.
type Registry struct {
	schemas map[Kind]Schema
}

// NewRegistry builds the registry over the full closed kind set.
func NewRegistry() *Registry {
	unitTypes := enumValues(UnitTypes())

	schemas := []Schema{
		{
			Kind:       KindNewUnit,
			EnumFields: map[string][]string{"unit_type": unitTypes},
			newPayload: func() Payload { return NewUnitPayload{} },
		},
		{
			Kind:       KindDisband,
			EnumFields: map[string][]string{"unit_type": unitTypes},
			newPayload: func() Payload { return DisbandPayload{} },
		},
		{
			Kind: KindOrder,
			EnumFields: map[string][]string{
				"unit_type":      unitTypes,
				"code":           enumValues(OrderCodes()),
				"conversion":     unitTypes,
				"sub_type":       unitTypes,
				"sub_code":       enumValues(OrderSubcodes()),
				"sub_conversion": unitTypes,
			},
			newPayload: func() Payload { return OrderPayload{} },
		},
		{
			Kind:       KindStandoff,
			EnumFields: map[string][]string{},
			newPayload: func() Payload { return StandoffPayload{} },
		},
		{
			Kind: KindConversion,
			EnumFields: map[string][]string{
				"before": unitTypes,
				"after":  unitTypes,
			},
			newPayload: func() Payload { return ConversionPayload{} },
		},
		{
			Kind:       KindControl,
			EnumFields: map[string][]string{},
			newPayload: func() Payload { return ControlPayload{} },
		},
		{
			Kind:       KindMovement,
			EnumFields: map[string][]string{"unit_type": unitTypes},
			newPayload: func() Payload { return MovementPayload{} },
		},
		{
			Kind:       KindRetreat,
			EnumFields: map[string][]string{"unit_type": unitTypes},
			newPayload: func() Payload { return RetreatPayload{} },
		},
		{
			Kind: KindUnitNotice,
			EnumFields: map[string][]string{
				"unit_type": unitTypes,
				"message":   enumValues(UnitMessages()),
			},
			newPayload: func() Payload { return UnitNoticePayload{} },
		},
		{
			Kind: KindCountryNotice,
			EnumFields: map[string][]string{
				"message": enumValues(CountryMessages()),
			},
			newPayload: func() Payload { return CountryNoticePayload{} },
		},
		{
			Kind: KindDisaster,
			EnumFields: map[string][]string{
				"message": enumValues(DisasterMessages()),
			},
			newPayload: func() Payload { return DisasterPayload{} },
		},
		{
			Kind:       KindIncome,
			EnumFields: map[string][]string{},
			newPayload: func() Payload { return IncomePayload{} },
		},
		{
			Kind: KindExpense,
			EnumFields: map[string][]string{
				"expense_kind": enumValues(ExpenseKinds()),
				"unit_type":    unitTypes,
			},
			newPayload: func() Payload { return ExpensePayload{} },
		},
		{
			Kind:       KindUncover,
			EnumFields: map[string][]string{},
			newPayload: func() Payload { return UncoverPayload{} },
		},
	}

	table := make(map[Kind]Schema, len(schemas))
	for _, schema := range schemas {
		table[schema.Kind] = schema
	}
	return &Registry{schemas: table}
}

// Kinds returns all registered kind tags, sorted.
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}
	out := make([]Kind, 0, len(r.schemas))
	for kind := range r.schemas {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Schema returns the schema for a kind tag.
func (r *Registry) Schema(kind Kind) (Schema, bool) {
	if r == nil {
		return Schema{}, false
	}
	schema, ok := r.schemas[kind]
	return schema, ok
}

// ValidateForAppend checks a record's temporal header and payload before the
// store assigns a sequence number. It returns the record unchanged on success.
func (r *Registry) ValidateForAppend(rec Record) (Record, error) {
	if r == nil {
		return Record{}, apperrors.New(apperrors.CodeUnknown, "event registry is required")
	}
	if strings.TrimSpace(rec.GameID) == "" {
		return Record{}, apperrors.New(apperrors.CodeInvalidHeader, "game id is required")
	}
	if rec.Year <= 0 {
		return Record{}, apperrors.WithMetadata(apperrors.CodeInvalidHeader,
			fmt.Sprintf("year must be positive, got %d", rec.Year),
			map[string]string{"game_id": rec.GameID})
	}
	if !rec.Season.Valid() {
		return Record{}, apperrors.New(apperrors.CodeInvalidHeader,
			fmt.Sprintf("unknown season %q", rec.Season))
	}
	if !rec.Phase.Valid() {
		return Record{}, apperrors.New(apperrors.CodeInvalidHeader,
			fmt.Sprintf("unknown phase %q", rec.Phase))
	}
	if _, ok := r.schemas[rec.Kind]; !ok {
		return Record{}, apperrors.New(apperrors.CodeUnknownKind,
			fmt.Sprintf("unknown event kind %q", rec.Kind))
	}

	payload, err := DecodePayload(rec)
	if err != nil {
		return Record{}, err
	}
	if err := validatePayload(payload); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// DecodePayload resolves the payload schema for a stored record via its kind
// tag. The switch is exhaustive over the closed kind set; adding a kind
// without extending it is a compile-visible defect in the registry tests.
func DecodePayload(rec Record) (Payload, error) {
	switch rec.Kind {
	case KindNewUnit:
		return decodeAs[NewUnitPayload](rec)
	case KindDisband:
		return decodeAs[DisbandPayload](rec)
	case KindOrder:
		return decodeAs[OrderPayload](rec)
	case KindStandoff:
		return decodeAs[StandoffPayload](rec)
	case KindConversion:
		return decodeAs[ConversionPayload](rec)
	case KindControl:
		return decodeAs[ControlPayload](rec)
	case KindMovement:
		return decodeAs[MovementPayload](rec)
	case KindRetreat:
		return decodeAs[RetreatPayload](rec)
	case KindUnitNotice:
		return decodeAs[UnitNoticePayload](rec)
	case KindCountryNotice:
		return decodeAs[CountryNoticePayload](rec)
	case KindDisaster:
		return decodeAs[DisasterPayload](rec)
	case KindIncome:
		return decodeAs[IncomePayload](rec)
	case KindExpense:
		return decodeAs[ExpensePayload](rec)
	case KindUncover:
		return decodeAs[UncoverPayload](rec)
	default:
		return nil, apperrors.New(apperrors.CodeUnknownKind,
			fmt.Sprintf("unknown event kind %q", rec.Kind))
	}
}

// EncodePayload serializes a payload body for storage.
func EncodePayload(payload Payload) ([]byte, error) {
	if payload == nil {
		return nil, apperrors.New(apperrors.CodeInvalidPayload, "payload is required")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPayload, "marshal payload", err)
	}
	return data, nil
}

func decodeAs[T Payload](rec Record) (Payload, error) {
	var payload T
	if len(rec.PayloadJSON) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidPayload,
			fmt.Sprintf("record kind %q has no payload", rec.Kind))
	}
	if err := json.Unmarshal(rec.PayloadJSON, &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPayload,
			fmt.Sprintf("decode %q payload", rec.Kind), err)
	}
	return payload, nil
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}
