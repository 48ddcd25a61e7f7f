// Package ast defines the closed set of ThingTalk AST node shapes the
// checker consumes (spec §3 "AST"). Nodes are produced by the parser (an
// out-of-scope collaborator) and mutated in place by the checker: schema
// pointers are filled, args/types/index/out are rewritten by
// projection/aggregation/join, and in_params are extended with
// Undefined slots for unsupplied required inputs.
package ast

import "github.com/thingpedia/tt-semcheck/types"

// Value is the closed sum type of ThingTalk literal and pseudo-value
// forms (spec §3 "Value"). Every checking routine that needs to inspect
// a Value does so by a type switch, never by dynamic dispatch (spec §9,
// Design Notes: "avoid open class hierarchies").
type Value interface {
	isValue()
}

type NumberValue struct{ Value float64 }
type StringValue struct{ Value string }
type BooleanValue struct{ Value bool }
type DateValue struct{ Value string } // ISO-8601, opaque to the checker
type TimeValue struct{ Hour, Minute, Second int }
type LocationValue struct {
	Latitude, Longitude float64
	Display             string
}
type CurrencyValue struct {
	Value float64
	Code  string
}
type EntityValue struct {
	EntityType string // ontology kind, e.g. "tt:username"
	Value      string
	Display    string
}
type EnumValue struct{ Value string }
type MeasureValue struct {
	Value float64
	Unit  string
}
type CompoundMeasureValue struct{ Parts []MeasureValue }
type ArrayValue struct{ Elements []Value }

// VarRefValue is either a reference to a scope-bound name or, when Name
// has the "$context." prefix, a pseudo-variable resolved by a static
// table in package expression.
type VarRefValue struct{ Name string }

// EventValue is the $event pseudo-value. Name is nil for plain $event,
// or points to a sub-field name (e.g. "program_id", which is always
// permitted regardless of hasEvent).
type EventValue struct{ Name *string }

// UndefinedValue placeholder is inserted by the Rule checker's
// postcondition pass for every required input left unsupplied at a
// primitive (spec §4.9).
type UndefinedValue struct{ Remote bool }

func (NumberValue) isValue()           {}
func (StringValue) isValue()           {}
func (BooleanValue) isValue()          {}
func (DateValue) isValue()             {}
func (TimeValue) isValue()             {}
func (LocationValue) isValue()         {}
func (CurrencyValue) isValue()         {}
func (EntityValue) isValue()           {}
func (EnumValue) isValue()             {}
func (MeasureValue) isValue()          {}
func (CompoundMeasureValue) isValue()  {}
func (ArrayValue) isValue()            {}
func (VarRefValue) isValue()           {}
func (EventValue) isValue()            {}
func (UndefinedValue) isValue()        {}

// LiteralType returns the declared type of a literal Value. It does not
// handle VarRefValue or EventValue, whose types depend on scope — those
// are resolved by expression.TypeForValue.
func LiteralType(v Value) (types.Type, bool) {
	switch val := v.(type) {
	case NumberValue:
		return types.Number, true
	case StringValue:
		return types.String, true
	case BooleanValue:
		return types.Boolean, true
	case DateValue:
		return types.Date, true
	case TimeValue:
		return types.Time, true
	case LocationValue:
		return types.Location, true
	case CurrencyValue:
		return types.Currency, true
	case EntityValue:
		return types.Entity(val.EntityType), true
	case EnumValue:
		return types.Enum(val.Value), true
	case MeasureValue:
		return types.Measure(val.Unit), true
	case CompoundMeasureValue:
		unit := ""
		if len(val.Parts) > 0 {
			unit = val.Parts[0].Unit
		}
		return types.Measure(unit), true
	case ArrayValue:
		if len(val.Elements) == 0 {
			return types.Array(types.Any), true
		}
		elemT, ok := LiteralType(val.Elements[0])
		if !ok {
			return types.Type{}, false
		}
		return types.Array(elemT), true
	default:
		return types.Type{}, false
	}
}
