// Package types implements the ThingTalk type lattice: primitive, measure,
// entity, enum, array, tuple, function, and type-variable kinds, plus
// structural assignability with type-variable unification and unit
// substitution (spec §4.1, C1).
package types

import "fmt"

// Kind tags the variant held by a Type value. Types form a closed sum
// type; all checking code switches exhaustively over Kind rather than
// using dynamic dispatch (spec §9, Design Notes).
type Kind int

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	KindDate
	KindTime
	KindLocation
	KindCurrency
	KindAny
	KindMeasure
	KindEntity
	KindEnum
	KindArray
	KindTuple
	KindFunctionDef
	KindTypeVar

	// KindStreamDecl and KindTableDecl mark a declaration argument that
	// is itself a stream or table (rather than a scalar value) — spec
	// §4.4, Scope.assign: "routes table/stream entries to globals as
	// empty schemas". They never appear inside operator signatures or
	// as the type of an ordinary filter/compute value.
	KindStreamDecl
	KindTableDecl
)

// Type is a single node of the ThingTalk type lattice. The zero value has
// kind KindBoolean and so equals Boolean; use one of the constructors below.
type Type struct {
	kind Kind

	// Measure
	unit string // "" means "any compatible unit", resolved via _unit

	// Entity
	entityKind string

	// Enum
	choices []string

	// Array / Tuple
	elem  *Type
	elems []Type

	// FunctionDef
	schema FunctionSchema

	// TypeVar
	varName string
}

// FunctionSchema is the narrow view of schema.Schema that the type
// lattice needs in order to wrap a first-class function type
// (Declaration bound as a global). The full schema.Schema type lives in
// package schema and implements this interface; keeping the interface
// here (rather than importing schema) avoids a dependency cycle between
// types and schema, since schema.Schema embeds Type values for its
// argument types.
type FunctionSchema interface {
	SchemaArgs() []string
}

var (
	Boolean  = Type{kind: KindBoolean}
	Number   = Type{kind: KindNumber}
	String   = Type{kind: KindString}
	Date     = Type{kind: KindDate}
	Time     = Type{kind: KindTime}
	Location = Type{kind: KindLocation}
	Currency = Type{kind: KindCurrency}
	Any      = Type{kind: KindAny}
)

// Measure constructs a dimensioned-quantity type. An empty unit denotes
// "any compatible unit", resolved through the _unit type variable during
// assignability.
func Measure(unit string) Type {
	return Type{kind: KindMeasure, unit: unit}
}

// Entity constructs a branded-string type with the given ontology kind
// (e.g. "tt:username", "tt:contact").
func Entity(kind string) Type {
	return Type{kind: KindEntity, entityKind: kind}
}

// Enum constructs a finite-choice type.
func Enum(choices ...string) Type {
	cp := make([]string, len(choices))
	copy(cp, choices)
	return Type{kind: KindEnum, choices: cp}
}

// Array constructs an array-of-elem type.
func Array(elem Type) Type {
	e := elem
	return Type{kind: KindArray, elem: &e}
}

// Tuple constructs a fixed-arity product type.
func Tuple(elems ...Type) Type {
	cp := make([]Type, len(elems))
	copy(cp, elems)
	return Type{kind: KindTuple, elems: cp}
}

// FunctionDef wraps a schema as a first-class type, used when a
// Declaration is bound as a global.
func FunctionDef(s FunctionSchema) Type {
	return Type{kind: KindFunctionDef, schema: s}
}

// StreamDecl and TableDecl mark a declaration argument as itself being a
// stream or table value, for Scope.Assign routing.
var (
	StreamDecl = Type{kind: KindStreamDecl}
	TableDecl  = Type{kind: KindTableDecl}
)

// Var constructs a type-variable reference. Type variables only ever
// appear inside operator overload signatures (package types/operators);
// they are resolved away during IsAssignable / ResolveTypeVars.
func Var(name string) Type {
	return Type{kind: KindTypeVar, varName: name}
}

func (t Type) Kind() Kind { return t.kind }
func (t Type) Unit() string {
	return t.unit
}
func (t Type) EntityKind() string { return t.entityKind }
func (t Type) Choices() []string  { return t.choices }
func (t Type) Elem() Type {
	if t.elem == nil {
		return Any
	}
	return *t.elem
}
func (t Type) Elems() []Type              { return t.elems }
func (t Type) Schema() FunctionSchema      { return t.schema }
func (t Type) VarName() string             { return t.varName }
func (t Type) IsMeasure() bool             { return t.kind == KindMeasure }
func (t Type) IsEntity() bool              { return t.kind == KindEntity }
func (t Type) IsArray() bool               { return t.kind == KindArray }
func (t Type) IsTuple() bool               { return t.kind == KindTuple }
func (t Type) IsTypeVar() bool             { return t.kind == KindTypeVar }
func (t Type) IsAny() bool                 { return t.kind == KindAny }

// String renders a human-readable type name, used in diagnostics.
func (t Type) String() string {
	switch t.kind {
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindLocation:
		return "Location"
	case KindCurrency:
		return "Currency"
	case KindAny:
		return "Any"
	case KindMeasure:
		if t.unit == "" {
			return "Measure()"
		}
		return fmt.Sprintf("Measure(%s)", t.unit)
	case KindEntity:
		return fmt.Sprintf("Entity(%s)", t.entityKind)
	case KindEnum:
		return fmt.Sprintf("Enum(%v)", t.choices)
	case KindArray:
		return fmt.Sprintf("Array(%s)", t.Elem())
	case KindTuple:
		return fmt.Sprintf("Tuple(%v)", t.elems)
	case KindFunctionDef:
		return "FunctionDef"
	case KindStreamDecl:
		return "Stream"
	case KindTableDecl:
		return "Table"
	case KindTypeVar:
		return fmt.Sprintf("'%s", t.varName)
	default:
		return "Unknown"
	}
}

// Equals reports structural equality (two unresolved type variables with
// different names are never equal).
func (t Type) Equals(o Type) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindMeasure:
		return t.unit == o.unit
	case KindEntity:
		return t.entityKind == o.entityKind
	case KindTypeVar:
		return t.varName == o.varName
	case KindEnum:
		if len(t.choices) != len(o.choices) {
			return false
		}
		for i := range t.choices {
			if t.choices[i] != o.choices[i] {
				return false
			}
		}
		return true
	case KindArray:
		return t.Elem().Equals(o.Elem())
	case KindTuple:
		if len(t.elems) != len(o.elems) {
			return false
		}
		for i := range t.elems {
			if !t.elems[i].Equals(o.elems[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
