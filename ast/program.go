package ast

import (
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

// ClassDef is an entry of Program.Classes: a local class alias that may
// extend another kind (spec §6 "Classes map").
type ClassDef struct {
	Name    string
	Extends string
}

// DeclarationType distinguishes what kind of value a Declaration's body
// evaluates to.
type DeclarationType int

const (
	DeclStream DeclarationType = iota
	DeclTable
	DeclAction
)

// Declaration binds a name to a stream, table, or action value,
// optionally parameterized by lambda arguments (spec §3 "Declaration",
// §4.9).
type Declaration struct {
	Name     string
	Type     DeclarationType
	Args     []string
	ArgTypes []types.Type

	// exactly one of these is non-nil, selected by Type
	StreamValue Stream
	TableValue  Table
	ActionValue *Invocation

	Schema *schema.Schema
}

// Rule drives a stream-or-table through the Composer, then each action
// through the Primitive Checker (spec §3 "Rule", §4.9). Exactly one of
// Stream/Table may be set; both nil means the rule fires once with no
// query (legal only if at least one action is not the builtin notify).
type Rule struct {
	Stream  Stream
	Table   Table
	Actions []*Invocation
}

// Policy is a permission rule: gate Action on behalf of Principal,
// subject to Query's filter (spec §3 "Policy", §4.9). Principal is a
// filter expression (e.g. `source == @me.phone`), type-checked in a
// fresh scope seeded with `source: Entity(tt:contact)` — unlike
// Program.Principal, which is a plain value.
type Policy struct {
	Principal BooleanExpression
	Query     *Invocation
	Action    *Invocation
}

// Program is the root AST node (spec §3 "Program").
type Program struct {
	Classes      map[string]ClassDef
	Declarations []*Declaration
	Rules        []*Rule
	Principal    Value // nil for a principal-less program
}
