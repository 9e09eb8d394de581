// Package render formats stored event records as player-facing log lines.
// Sentences come from the embedded i18n catalog (namespace "events") and fall
// back to en-US when the requested locale has no translation.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	apperrors "github.com/jonmarkgo/condottieri-events/internal/errors"
	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/platform/i18n/catalog"
)

// Renderer formats event records through a catalog bundle.
type Renderer struct {
	bundle *catalog.Bundle
}

// New creates a renderer over the process-wide embedded catalogs.
func New() *Renderer {
	return NewWithBundle(catalog.Default())
}

// NewWithBundle creates a renderer over an explicit catalog bundle.
func NewWithBundle(bundle *catalog.Bundle) *Renderer {
	return &Renderer{bundle: bundle}
}

// Render decodes the record's payload and formats one sentence in the
// requested locale. The payload switch is exhaustive over the closed variant
// set; a record whose kind is outside it decodes to an unknown-kind error
// before the switch runs.
func (r *Renderer) Render(rec event.Record, locale string) (string, error) {
	payload, err := event.DecodePayload(rec)
	if err != nil {
		return "", err
	}

	switch p := payload.(type) {
	case event.NewUnitPayload:
		return r.format(locale, "events.unit.created", map[string]string{
			"Country":  p.Country,
			"UnitType": r.unitName(locale, p.UnitType),
			"Area":     p.Area,
		})
	case event.DisbandPayload:
		return r.format(locale, "events.unit.disbanded", map[string]string{
			"UnitType": r.unitName(locale, p.UnitType),
			"Area":     p.Area,
		})
	case event.ConversionPayload:
		return r.format(locale, "events.unit.converted", map[string]string{
			"Area":   p.Area,
			"Before": r.unitName(locale, p.Before),
			"After":  r.unitName(locale, p.After),
		})
	case event.MovementPayload:
		return r.format(locale, "events.unit.moved", map[string]string{
			"UnitType":    r.unitName(locale, p.UnitType),
			"Origin":      p.Origin,
			"Destination": p.Destination,
		})
	case event.RetreatPayload:
		return r.format(locale, "events.unit.retreated", map[string]string{
			"UnitType":    r.unitName(locale, p.UnitType),
			"Origin":      p.Origin,
			"Destination": p.Destination,
		})
	case event.UnitNoticePayload:
		return r.format(locale, "events.unit.notice."+string(p.Message), map[string]string{
			"UnitType": r.unitName(locale, p.UnitType),
			"Area":     p.Area,
		})
	case event.UncoverPayload:
		return r.format(locale, "events.unit.uncovered", map[string]string{
			"Country": p.Country,
			"Area":    p.Area,
		})
	case event.OrderPayload:
		return r.format(locale, "events.order.confirmed", map[string]string{
			"Country": p.Country,
			"Order":   OrderNotation(p),
		})
	case event.StandoffPayload:
		return r.format(locale, "events.area.standoff", map[string]string{
			"Area": p.Area,
		})
	case event.ControlPayload:
		if p.Country == "" {
			return r.format(locale, "events.area.control_changed.neutral", map[string]string{
				"Area": p.Area,
			})
		}
		return r.format(locale, "events.area.control_changed", map[string]string{
			"Country": p.Country,
			"Area":    p.Area,
		})
	case event.DisasterPayload:
		return r.format(locale, "events.area.disaster."+string(p.Message), map[string]string{
			"Area": p.Area,
		})
	case event.CountryNoticePayload:
		return r.format(locale, "events.country.notice."+string(p.Message), map[string]string{
			"Country": p.Country,
		})
	case event.IncomePayload:
		return r.format(locale, "events.country.income", map[string]string{
			"Country": p.Country,
			"Ducats":  strconv.Itoa(p.Ducats),
		})
	case event.ExpensePayload:
		return r.renderExpense(locale, p)
	default:
		return "", apperrors.New(apperrors.CodeUnknownKind,
			fmt.Sprintf("no renderer for payload type %T", payload))
	}
}

// RenderHeader formats the record's temporal header, e.g. "1454, spring,
// order writing".
func (r *Renderer) RenderHeader(rec event.Record, locale string) string {
	season := r.term(locale, "events.season."+string(rec.Season), string(rec.Season))
	phase := r.term(locale, "events.phase."+string(rec.Phase), string(rec.Phase))
	return fmt.Sprintf("%d, %s, %s", rec.Year, season, phase)
}

// renderExpense appends the unit-target suffix inside the sentence: the base
// message ends with the terminal period, so it is trimmed off and the suffix
// template carries it instead.
func (r *Renderer) renderExpense(locale string, p event.ExpensePayload) (string, error) {
	line, err := r.format(locale, "events.country.expense."+string(p.ExpenseKind), map[string]string{
		"Country": p.Country,
		"Ducats":  strconv.Itoa(p.Ducats),
	})
	if err != nil {
		return "", err
	}
	if p.Area == "" {
		return line, nil
	}
	target, err := r.format(locale, "events.country.expense.target", map[string]string{
		"UnitType": r.unitName(locale, p.UnitType),
		"Area":     p.Area,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, ".") + target, nil
}

// format resolves a catalog key and executes it as a text template over the
// metadata map. A key absent from every locale is a catalog defect, not a
// malformed record.
func (r *Renderer) format(locale string, key string, data map[string]string) (string, error) {
	text, ok := r.bundle.Message(locale, key)
	if !ok {
		return "", apperrors.WithMetadata(apperrors.CodeNotFound,
			"message key not found in catalogs", map[string]string{"key": key})
	}
	tmpl, err := template.New(key).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse message %s: %w", key, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("format message %s: %w", key, err)
	}
	return sb.String(), nil
}

// term resolves a plain catalog key, returning the fallback when no locale
// defines it.
func (r *Renderer) term(locale string, key string, fallback string) string {
	if value, ok := r.bundle.Message(locale, key); ok {
		return value
	}
	return fallback
}

func (r *Renderer) unitName(locale string, t event.UnitType) string {
	return r.term(locale, "events.unit_type."+string(t), string(t))
}

// OrderNotation builds the board notation for a confirmed order, e.g.
// "A venice - rome" or "F naples S A rome - capua". Conversions render as
// "G venice = A". The notation uses the raw single-letter tags and is not
// localized.
func OrderNotation(p event.OrderPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", p.UnitType, p.Origin)

	switch p.Code {
	case event.OrderAdvance:
		fmt.Fprintf(&b, " - %s", p.Destination)
	case event.OrderConversion:
		fmt.Fprintf(&b, " = %s", p.Conversion)
	case event.OrderConvoy, event.OrderSupport:
		fmt.Fprintf(&b, " %s", p.Code)
		if p.HasSubOrder() {
			fmt.Fprintf(&b, " %s %s", p.SubType, p.SubOrigin)
			switch p.SubCode {
			case event.SubcodeAdvance:
				fmt.Fprintf(&b, " - %s", p.SubDestination)
			case event.SubcodeConversion:
				fmt.Fprintf(&b, " = %s", p.SubConversion)
			case event.SubcodeHold:
				b.WriteString(" H")
			}
		}
	default:
		fmt.Fprintf(&b, " %s", p.Code)
	}
	return b.String()
}
