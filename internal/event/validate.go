package event

import (
	"fmt"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
)

// validatePayload checks kind-specific field constraints after decoding.
// Optional fields validate only when set; the empty string is the explicit
// "none" value, not an error.
func validatePayload(payload Payload) error {
	switch p := payload.(type) {
	case NewUnitPayload:
		if p.Country == "" {
			return invalid(p, "country is required")
		}
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		return requireUnitType(p, "unit_type", p.UnitType)
	case DisbandPayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		return requireUnitType(p, "unit_type", p.UnitType)
	case OrderPayload:
		return validateOrder(p)
	case StandoffPayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		return nil
	case ConversionPayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		if err := requireUnitType(p, "before", p.Before); err != nil {
			return err
		}
		return requireUnitType(p, "after", p.After)
	case ControlPayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		return nil
	case MovementPayload:
		if p.Origin == "" || p.Destination == "" {
			return invalid(p, "origin and destination are required")
		}
		return requireUnitType(p, "unit_type", p.UnitType)
	case RetreatPayload:
		if p.Origin == "" || p.Destination == "" {
			return invalid(p, "origin and destination are required")
		}
		return requireUnitType(p, "unit_type", p.UnitType)
	case UnitNoticePayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		if err := requireUnitType(p, "unit_type", p.UnitType); err != nil {
			return err
		}
		if !p.Message.Valid() {
			return invalid(p, fmt.Sprintf("unknown unit message %q", p.Message))
		}
		return nil
	case CountryNoticePayload:
		if p.Country == "" {
			return invalid(p, "country is required")
		}
		if !p.Message.Valid() {
			return invalid(p, fmt.Sprintf("unknown country message %q", p.Message))
		}
		return nil
	case DisasterPayload:
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		if !p.Message.Valid() {
			return invalid(p, fmt.Sprintf("unknown disaster message %q", p.Message))
		}
		return nil
	case IncomePayload:
		if p.Country == "" {
			return invalid(p, "country is required")
		}
		if p.Ducats < 0 {
			return invalid(p, fmt.Sprintf("ducats must be non-negative, got %d", p.Ducats))
		}
		return nil
	case ExpensePayload:
		return validateExpense(p)
	case UncoverPayload:
		if p.Country == "" {
			return invalid(p, "country is required")
		}
		if p.Area == "" {
			return invalid(p, "area is required")
		}
		return nil
	default:
		return apperrors.New(apperrors.CodeUnknownKind,
			fmt.Sprintf("unhandled payload type %T", payload))
	}
}

func validateOrder(p OrderPayload) error {
	if p.Country == "" {
		return invalid(p, "country is required")
	}
	if p.Origin == "" {
		return invalid(p, "origin is required")
	}
	if err := requireUnitType(p, "unit_type", p.UnitType); err != nil {
		return err
	}
	if !p.Code.Valid() {
		return invalid(p, fmt.Sprintf("unknown order code %q", p.Code))
	}
	if p.Conversion != "" && !p.Conversion.Valid() {
		return invalid(p, fmt.Sprintf("unknown conversion type %q", p.Conversion))
	}

	// The sub-order quintet is recorded as a group or not at all.
	if p.HasSubOrder() {
		if p.SubType == "" || p.SubOrigin == "" {
			return invalid(p, "partial sub-order: sub_type and sub_origin are required")
		}
		if !p.SubType.Valid() {
			return invalid(p, fmt.Sprintf("unknown sub-order unit type %q", p.SubType))
		}
		if p.SubCode != "" && !p.SubCode.Valid() {
			return invalid(p, fmt.Sprintf("unknown sub-order code %q", p.SubCode))
		}
		if p.SubConversion != "" && !p.SubConversion.Valid() {
			return invalid(p, fmt.Sprintf("unknown sub-order conversion type %q", p.SubConversion))
		}
	}
	return nil
}

func validateExpense(p ExpensePayload) error {
	if p.Country == "" {
		return invalid(p, "country is required")
	}
	if p.Ducats < 0 {
		return invalid(p, fmt.Sprintf("ducats must be non-negative, got %d", p.Ducats))
	}
	if !p.ExpenseKind.Valid() {
		return invalid(p, fmt.Sprintf("unknown expense kind %q", p.ExpenseKind))
	}
	// Unit-dependent fields resolve to none as a pair.
	if (p.Area == "") != (p.UnitType == "") {
		return invalid(p, "area and unit_type must be set together")
	}
	if p.UnitType != "" && !p.UnitType.Valid() {
		return invalid(p, fmt.Sprintf("unknown unit type %q", p.UnitType))
	}
	return nil
}

func requireUnitType(payload Payload, field string, value UnitType) error {
	if !value.Valid() {
		return invalid(payload, fmt.Sprintf("unknown %s %q", field, value))
	}
	return nil
}

func invalid(payload Payload, message string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidPayload, message,
		map[string]string{"kind": string(payload.Kind())})
}
