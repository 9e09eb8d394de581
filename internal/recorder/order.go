package recorder

import (
	"context"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	"github.com/jonmarkgo/condottieri-events/internal/trigger"
)

// Order records a confirmed order. Absent destination, conversion, and
// sub-order fields resolve to the explicit "none" value rather than failing.
//
// The sub-order quintet is derived only when the order references a live
// sub-unit: then SubType and SubOrigin come from the sub-unit, and the
// remaining three from the order's own sub fields. Without a live sub-unit
// all five stay empty as a group; a partial sub-order is never recorded.
func (r *Recorder) Order(ctx context.Context, o trigger.Order) (event.Record, error) {
	if o == nil {
		return event.Record{}, malformed("sender must be an order")
	}
	unit := o.Unit()
	game, err := unitGame(unit)
	if err != nil {
		return event.Record{}, err
	}
	if unit.Country() == "" {
		return event.Record{}, malformed("ordered unit has no owning country")
	}
	if o.Code() == "" {
		return event.Record{}, malformed("order has no code")
	}

	payload := event.OrderPayload{
		Country:     unit.Country(),
		UnitType:    unit.Type(),
		Origin:      unit.Area(),
		Code:        o.Code(),
		Destination: o.Destination(),
		Conversion:  o.Conversion(),
	}

	if sub := o.SubUnit(); sub != nil && sub.Area() != "" {
		payload.SubType = sub.Type()
		payload.SubOrigin = sub.Area()
		payload.SubCode = o.SubCode()
		payload.SubDestination = o.SubDestination()
		payload.SubConversion = o.SubConversion()
	}

	return r.append(ctx, game, payload)
}
